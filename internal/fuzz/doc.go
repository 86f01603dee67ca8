// Package fuzztests houses Go fuzz harnesses for the paf front end
// (source -> lexer). The goal is to smoke test robustness: no panics, sticky
// errors, and token streams that always satisfy testkit invariants.
//
// Назначение: прогонять произвольные байты через FileSet и лексер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/diag, internal/testkit.

package fuzztests
