package translate

import (
	"regexp"
	"strconv"

	"github.com/mosaicmc/chatrender/internal/component"
	"github.com/mosaicmc/chatrender/internal/logger"
)

// tokenPattern matches both substitution token forms: "%s" and "%N$s".
var tokenPattern = regexp.MustCompile(`%(?:(\d+)\$)?s`)

// Translator resolves translation keys against an immutable table and
// substitutes positional arguments. Anomalies (missing key, missing
// argument) degrade to literal text and are reported through the logger.
type Translator struct {
	table Table
	log   *logger.Logger
}

// New creates a Translator over the given table. log may be nil to discard
// diagnostics.
func New(table Table, log *logger.Logger) *Translator {
	return &Translator{table: table, log: log}
}

// Format resolves key and returns the ordered substituted fragments.
// String args pass through as text; component args are returned as-is for
// the caller to render recursively. Format never fails: any internal error
// degrades to the raw key as a single text fragment.
func (tr *Translator) Format(key string, args []component.Arg) (frags []component.Arg) {
	defer func() {
		if r := recover(); r != nil {
			tr.log.WithFields(map[string]any{"key": key, "panic": r}).Warn("translation formatting failed")
			frags = []component.Arg{component.StringArg(key)}
		}
	}()

	// The literal placeholder key passes its arguments straight through.
	if key == "%s" {
		if len(args) == 0 {
			tr.log.WithFields(map[string]any{"key": key}).Warn("placeholder translation without arguments")
			return []component.Arg{component.StringArg(key)}
		}
		return append([]component.Arg(nil), args...)
	}

	template, ok := tr.table.Lookup(key)
	if !ok {
		tr.log.WithFields(map[string]any{"key": key}).Warn("missing translation key")
		return []component.Arg{component.StringArg(key)}
	}

	return tr.substitute(key, template, args)
}

func (tr *Translator) substitute(key, template string, args []component.Arg) []component.Arg {
	matches := tokenPattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return []component.Arg{component.StringArg(template)}
	}

	numbered := false
	for _, m := range matches {
		if m[2] >= 0 {
			numbered = true
			break
		}
	}

	var out []component.Arg
	last := 0
	next := 0

	for _, m := range matches {
		if m[0] > last {
			out = append(out, component.StringArg(template[last:m[0]]))
		}
		token := template[m[0]:m[1]]
		last = m[1]

		if numbered {
			if m[2] < 0 {
				// A bare %s inside a numbered template has no defined
				// position; keep it literal.
				tr.log.WithFields(map[string]any{"key": key, "token": token}).Warn("unnumbered token in numbered template")
				out = append(out, component.StringArg(token))
				continue
			}
			index, err := strconv.Atoi(template[m[2]:m[3]])
			if err != nil || index < 1 || index > len(args) {
				tr.log.WithFields(map[string]any{"key": key, "token": token}).Warn("substitution index out of range")
				out = append(out, component.StringArg(token))
				continue
			}
			out = append(out, args[index-1])
			continue
		}

		if next >= len(args) {
			tr.log.WithFields(map[string]any{"key": key, "token": token}).Warn("missing substitution argument")
			out = append(out, component.StringArg(token))
			continue
		}
		out = append(out, args[next])
		next++
	}

	if last < len(template) {
		out = append(out, component.StringArg(template[last:]))
	}

	return out
}
