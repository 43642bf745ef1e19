package parser

import (
	"strconv"

	"jsbundle/internal/diag"
	"jsbundle/internal/source"
	"jsbundle/internal/token"
)

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	tok := p.toks[p.pos]
	p.errAt(code, p.diagSpan(), msg)
	return token.Token{Kind: token.Invalid, Span: tok.Span, Text: tok.Text}, false
}

// expectBinding ожидает идентификатор, пригодный как имя локальной переменной.
func (p *Parser) expectBinding(what string) (token.Token, bool) {
	if p.at(token.Ident) {
		return p.advance(), true
	}
	tok := p.toks[p.pos]
	p.errAt(diag.SynExpectIdentifier, p.diagSpan(), "expected identifier for "+what+", got '"+tok.Text+"'")
	return tok, false
}

// diagSpan — span текущего токена; для EOF — позиция после предыдущего.
func (p *Parser) diagSpan() source.Span {
	tok := p.toks[p.pos]
	if tok.Kind == token.EOF && p.pos > 0 {
		end := p.toks[p.pos-1].Span.End
		return source.Span{File: tok.Span.File, Start: end, End: end}
	}
	return tok.Span
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) bool {
	return p.report(code, diag.SevError, sp, msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	b := p.build(code, sev, sp, msg)
	if b == nil {
		return false
	}
	b.Emit()
	return true
}

// build — как report, но отдаёт builder для заметок и исправлений.
// nil, если диагностика отброшена; методы builder'а это допускают.
func (p *Parser) build(code diag.Code, sev diag.Severity, sp source.Span, msg string) *diag.ReportBuilder {
	if sev == diag.SevError {
		p.opts.CurrentErrors++
		if p.opts.MaxErrors != 0 && p.opts.CurrentErrors > p.opts.MaxErrors {
			return nil // достигли максимального количества ошибок
		}
	}
	if p.opts.Reporter == nil {
		return nil
	}
	return diag.NewReportBuilder(p.opts.Reporter, sev, code, sp, msg)
}

func uitoa(n uint32) string {
	return strconv.FormatUint(uint64(n), 10)
}
