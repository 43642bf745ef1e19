package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedTemplate     Code = 1005
	LexUnterminatedRegex        Code = 1006

	// Синтаксические
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnclosedDelimiter Code = 2002
	SynUnmatchedCloser   Code = 2003
	SynMalformedImport   Code = 2004
	SynMalformedExport   Code = 2005
	SynExpectIdentifier  Code = 2006
	SynExpectString      Code = 2007
	SynExpectFrom        Code = 2008
	SynDuplicateExport   Code = 2009

	// Преобразование интерфейса модуля
	TrnInfo               Code = 3000
	TrnNamespaceImport    Code = 3001
	TrnReexport           Code = 3002
	TrnUnsupportedExport  Code = 3003
	TrnDestructuredExport Code = 3004
	TrnUndeclaredBinding  Code = 3005
	TrnAlreadyTransformed Code = 3006

	// Ввод-вывод
	IOInfo                 Code = 4000
	IOReadFailed           Code = 4001
	IOWriteFailed          Code = 4002
	IOUnsupportedSpecifier Code = 4003

	// Граф модулей и проект
	PrjInfo             Code = 5000
	PrjCyclicDependency Code = 5001
	PrjManifestNotFound Code = 5002
	PrjManifestInvalid  Code = 5003
	PrjEntryMissing     Code = 5004
	PrjVerifyFailed     Code = 5005
	PrjRuntimeException Code = 5006
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Bad number",
		LexUnterminatedTemplate:     "Unterminated template literal",
		LexUnterminatedRegex:        "Unterminated regular expression",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynUnclosedDelimiter:        "Unclosed delimiter",
		SynUnmatchedCloser:          "Unmatched closing delimiter",
		SynMalformedImport:          "Malformed import declaration",
		SynMalformedExport:          "Malformed export declaration",
		SynExpectIdentifier:         "Expected identifier",
		SynExpectString:             "Expected module specifier string",
		SynExpectFrom:               "Expected 'from'",
		SynDuplicateExport:          "Duplicate export name",
		TrnInfo:                     "Transform information",
		TrnNamespaceImport:          "Namespace import is not supported",
		TrnReexport:                 "Re-export is not supported",
		TrnUnsupportedExport:        "Unsupported export form",
		TrnDestructuredExport:       "Destructured export is not supported",
		TrnUndeclaredBinding:        "Exported binding is not declared",
		TrnAlreadyTransformed:       "Module already transformed",
		IOInfo:                      "I/O information",
		IOReadFailed:                "Cannot read file",
		IOWriteFailed:               "Cannot write file",
		IOUnsupportedSpecifier:      "Unsupported import specifier",
		PrjInfo:                     "Project information",
		PrjCyclicDependency:         "Cyclic dependency",
		PrjManifestNotFound:         "Manifest not found",
		PrjManifestInvalid:          "Invalid manifest",
		PrjEntryMissing:             "Entry file is not set",
		PrjVerifyFailed:             "Module body does not compile",
		PrjRuntimeException:         "Uncaught exception",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TRN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
