package rscript

import (
	"fmt"

	"go.rpack.dev/rpack/internal/core/domain"
)

// prelude is prepended to every program. It gives programs a small protocol
// for reporting a structured result: one JSON object written to the file
// named by RPACK_RESULT. It must not depend on any R package, since it also
// runs in projects whose library is empty or broken.
const prelude = `rpack__escape <- function(x) {
  x <- gsub("\\", "\\\\", x, fixed = TRUE)
  x <- gsub("\"", "\\\"", x, fixed = TRUE)
  x <- gsub("\n", "\\n", x, fixed = TRUE)
  x <- gsub("\r", "\\r", x, fixed = TRUE)
  x <- gsub("\t", "\\t", x, fixed = TRUE)
  x
}

rpack__string <- function(x) {
  paste0("\"", rpack__escape(as.character(x)), "\"")
}

rpack__bool <- function(x) {
  if (isTRUE(x)) "true" else "false"
}

rpack__emit <- function(ok, kind = "", message = "", data = "null") {
  json <- paste0(
    "{\"ok\":", rpack__bool(ok),
    ",\"kind\":", rpack__string(kind),
    ",\"message\":", rpack__string(message),
    ",\"data\":", data,
    "}"
  )
  path <- Sys.getenv("RPACK_RESULT")
  if (nzchar(path)) {
    con <- file(path, open = "w", encoding = "UTF-8")
    writeLines(json, con)
    close(con)
  }
}

rpack__ok <- function(data = "null") {
  rpack__emit(TRUE, data = data)
}

rpack__fail <- function(kind, message) {
  rpack__emit(FALSE, kind = kind, message = message)
  quit(save = "no", status = 1)
}
`

// Wrap packages a program body with the error trap of the result protocol.
// The body reports success by calling rpack__ok, optionally with a JSON
// payload; an uncaught error becomes a failed result of kind "error" whose
// message is the interpreter's own condition message.
func Wrap(name, body string) domain.Program {
	source := fmt.Sprintf(`tryCatch({
%s
}, error = function(e) {
  rpack__fail("error", conditionMessage(e))
})
`, body)
	return domain.Program{Name: name, Source: source}
}
