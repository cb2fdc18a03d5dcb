// Package executor runs action command templates.
//
// A template is rendered in two steps. Environment references ($VAR and
// ${VAR}) are expanded first; references to unset variables are kept as
// written so the shell can still interpret forms like ${EDITOR:-vi}. Then
// every {value} placeholder is replaced with the selected value.
//
// The value itself gets a leading ~ expanded and, when the action asks for
// it, is resolved against the work directory.
//
// Commands run synchronously with the caller's stdio. A failed or unstartable
// command triggers the action's fallback once; there is no retry beyond that.
//
//	Ready -> Running(primary) -> Success
//	                          -> Running(fallback) -> Success | Failed
package executor
