package fuzztests

import (
	"testing"
)

const maxFuzzInput = 1 << 16 // 64 KiB

var moduleSeeds = []string{
	"",
	"import a from './a.js';\nexport default a;\n",
	"import { x as y, z } from \"../lib/z.js\";\nexport { y, z as w };\n",
	"import './side-effect.js'\nconsole.log(1)\n",
	"import * as ns from './ns.js';\n",
	"export const a = 1, b = [2, 3];\nexport let c;\n",
	"export function f() { return `t${1 + {a: 2}.a}`; }\n",
	"export class C { m() { return /re{1,2}/g.test('x'); } }\n",
	"export default function () {}\n",
	"export default class extends Object {}\n",
	"export const { a, b } = obj;\n",
	"export { a } from './a.js';\n",
	"#!/usr/bin/env node\nexport default 1 // trailing\n",
	"const s = 'unterminated\n",
	"/* unclosed comment\n",
	"function f( {\n",
	"}}}",
	"let x = a\n/b/g.exec(c)\n",
	"export { x, x };\nvar x;\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range moduleSeeds {
		f.Add([]byte(s))
	}
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func truncateForLog(data []byte, limit int) []byte {
	if len(data) <= limit {
		return data
	}
	return data[:limit]
}
