// Package token defines lexical token kinds and trivia for JavaScript
// module sources.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Whitespace, comments and a leading hashbang are kept as Leading trivia,
//     so concatenating trivia and token texts reproduces the file.
//   - Contextual words (from, as, of, let, async, await, yield, get, set,
//     static) are lexed as Ident; the parser checks them with IsWord.
//   - Template literals are split into Head/Middle/Tail parts around each
//     substitution; a template without substitutions is TemplateNoSubst.
package token
