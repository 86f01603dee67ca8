// Package token defines lexical token kinds for the paf front end.
// Invariants:
//   - Token.Text is exactly the source text of the token (underscores in numbers included).
//   - Token.Span matches Text exactly (Start..End, byte offsets).
//   - Row/Col are zero-based display coordinates of the first character.
//   - The set of kinds is closed; EOF and Invalid never appear in a Tokenize result.
//   - Built-in type names (int, float) are identifiers. The lexer does not know about them.
package token
