/*
Package runner implements the operator-facing I/O of the namespace tool.

TextConsole is the line-oriented channel the reconciler and the session driver talk
through: prompts go to the writer, answers come from the reader, and end-of-input is
surfaced as io.EOF so callers can treat it as the clean termination signal.

Every line is sanitized (size limit, UTF-8 validity, control characters) before it
reaches the workflow, and IsAffirmative is the single place operator answers are
normalized to yes/no.
*/
package runner
