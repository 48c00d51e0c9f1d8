package config

// Rpackfile represents the structure of the rpack.yaml configuration file.
// Every field is optional; an absent field keeps the default environment
// value.
type Rpackfile struct {
	// Rscript overrides the interpreter command.
	Rscript string `yaml:"rscript"`

	// Library overrides the project library directory. A relative path is
	// resolved against the project root.
	Library string `yaml:"library"`

	// Repos replaces the package repositories.
	Repos map[string]string `yaml:"repos"`
}
