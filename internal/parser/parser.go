package parser

import (
	"context"

	"jsbundle/internal/ast"
	"jsbundle/internal/diag"
	"jsbundle/internal/lexer"
	"jsbundle/internal/source"
	"jsbundle/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
	// Errors counts parser errors; lexer errors go to the reporter only.
	Errors uint
}

// Parser — состояние парсера на один файл.
// Разбирается только верхний уровень: import/export получают payload,
// всё остальное — StmtOther со спаном исходника.
type Parser struct {
	toks     []token.Token
	match    []int // индекс закрывающей скобки для каждой открывающей, -1 если нет
	pos      int
	arenas   *ast.Builder
	file     ast.FileID
	src      *source.File
	opts     Options
	exported map[string]source.Span
}

// ParseFile — входная точка для разбора одного файла.
// Лексер вычитывается целиком: ASI и различение import(...) требуют
// заглядывания на несколько токенов вперёд.
func ParseFile(
	ctx context.Context,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	src := lx.File()
	p := Parser{
		toks:     lx.All(),
		arenas:   arenas,
		src:      src,
		opts:     opts,
		exported: make(map[string]source.Span),
	}
	p.file = arenas.NewFile(p.fileSpan())

	if ctx.Err() == nil {
		p.matchBrackets()
		p.parseStmts()
	}

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	} else if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File:   p.file,
		Bag:    bag,
		Errors: p.opts.CurrentErrors,
	}
}

// Parse lexes and parses one file, sending lexer and parser diagnostics to
// opts.Reporter.
func Parse(ctx context.Context, file *source.File, arenas *ast.Builder, opts Options) Result {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	return ParseFile(ctx, lx, arenas, opts)
}

func (p *Parser) fileSpan() source.Span {
	return source.Span{File: p.src.ID, Start: 0, End: p.toks[len(p.toks)-1].Span.End}
}

func (p *Parser) at(k token.Kind) bool {
	return p.toks[p.pos].Kind == k
}

func (p *Parser) atWord(word string) bool {
	return p.toks[p.pos].IsWord(word)
}

// peekAt возвращает токен на n позиций впереди; за концом — EOF.
func (p *Parser) peekAt(n int) token.Token {
	i := min(p.pos+n, len(p.toks)-1)
	return p.toks[i]
}

func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.pos++
		return true
	}
	return false
}

func (p *Parser) eatWord(word string) bool {
	if p.atWord(word) {
		p.pos++
		return true
	}
	return false
}

// spanOf покрывает токены [from, to).
func (p *Parser) spanOf(from, to int) source.Span {
	if to <= from {
		off := p.toks[from].Span.Start
		return source.Span{File: p.src.ID, Start: off, End: off}
	}
	return p.toks[from].Span.Cover(p.toks[to-1].Span)
}

func (p *Parser) text(from, to int) string {
	return p.src.Slice(p.spanOf(from, to))
}

// parseStmts — основной цикл верхнего уровня.
func (p *Parser) parseStmts() {
	for !p.at(token.EOF) {
		start := p.pos
		var id ast.StmtID
		switch {
		case p.isImportDecl(p.pos):
			id = p.parseImport()
		case p.at(token.KwExport):
			id = p.parseExport()
		default:
			id = p.parseOther()
		}
		if id.IsValid() {
			p.arenas.PushStmt(p.file, id)
		}
		if p.pos == start {
			// защита от зацикливания на ошибочном входе
			p.pos++
		}
	}
}

// parseOther — любая инструкция вне интерфейса модуля.
func (p *Parser) parseOther() ast.StmtID {
	start := p.pos
	end := p.stmtEnd(start)
	p.collectBindings(start, end)
	p.pos = end
	return p.arenas.NewStmt(ast.StmtOther, p.spanOf(start, end))
}

// isImportDecl: import, за которым не следует '(' или '.' (import() и import.meta).
func (p *Parser) isImportDecl(i int) bool {
	if p.toks[i].Kind != token.KwImport || !p.startsStmt(i) {
		return false
	}
	next := p.toks[min(i+1, len(p.toks)-1)].Kind
	return next != token.LParen && next != token.Dot
}

// isInterfaceStart сообщает, начинается ли с токена i объявление import/export.
func (p *Parser) isInterfaceStart(i int) bool {
	return p.isImportDecl(i) || (p.toks[i].Kind == token.KwExport && p.startsStmt(i))
}

// startsStmt отсекает обращения к свойствам: obj.import, obj?.export.
func (p *Parser) startsStmt(i int) bool {
	if i == 0 {
		return true
	}
	prev := p.toks[i-1].Kind
	return prev != token.Dot && prev != token.QuestionDot
}

// finishStmt съедает ';' или проверяет, что применима вставка точки с запятой.
func (p *Parser) finishStmt(code diag.Code) bool {
	if p.eat(token.Semicolon) {
		return true
	}
	tok := p.toks[p.pos]
	if tok.Kind == token.EOF || tok.NewlineBefore() {
		return true
	}
	p.errAt(code, tok.Span, "expected ';' but found '"+tok.Text+"'")
	return false
}

// resync пропускает остаток ошибочной инструкции.
func (p *Parser) resync(from int) {
	p.pos = max(p.stmtEnd(from), from+1)
	if p.pos >= len(p.toks) {
		p.pos = len(p.toks) - 1
	}
}
