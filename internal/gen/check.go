package gen

import (
	"fmt"

	"probe-generator/internal/capture"
	"probe-generator/internal/decl"
	"probe-generator/internal/diagnostic"
)

// CheckConfig controls which findings are treated as errors.
type CheckConfig struct {
	// Strict turns duplicate call numbers into errors. Otherwise the later
	// declaration silently replaces the earlier file and only a warning is kept.
	Strict bool
}

// Check reports problems in a declaration set without generating anything.
// Nothing it reports changes generated output.
func Check(decls []decl.Declaration, bad []*decl.LineError, table *capture.Table, config CheckConfig) diagnostic.Diagnostics {
	if table == nil {
		table = capture.DefaultTable()
	}

	var diags diagnostic.Diagnostics

	for _, e := range bad {
		diags.AddWarning(diagnostic.CodeMalformed, fmt.Sprintf("%v in %q", e.Err, e.Text), fmt.Sprintf("line %d", e.Line), "")
	}

	diags.Merge(checkDuplicates(decls, config))

	for _, d := range decls {
		diags.Merge(checkDeclaration(d, table))
	}

	return diags
}

func checkDuplicates(decls []decl.Declaration, config CheckConfig) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	first := make(map[int]decl.Declaration, len(decls))

	for _, d := range decls {
		prev, seen := first[d.Number]
		if !seen {
			first[d.Number] = d
			continue
		}

		msg := fmt.Sprintf("call number %d already declared by %s (line %d)", d.Number, prev, prev.Line)
		if name := Filename(d.Number, d.Lower); name == Filename(prev.Number, prev.Lower) {
			msg += "; " + name + " is overwritten"
		}

		if config.Strict {
			diags.AddError(diagnostic.CodeDuplicateNumber, msg, d.String(), "")
		} else {
			diags.AddWarning(diagnostic.CodeDuplicateNumber, msg, d.String(), "")
		}
	}

	return diags
}

func checkDeclaration(d decl.Declaration, table *capture.Table) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	params := d.EnterParams()

	if tok, dropped := decl.DroppedToken(d.EnterRaw); dropped {
		diags.AddWarning(diagnostic.CodeDroppedToken,
			fmt.Sprintf("trailing token %q has no name and is dropped", tok), d.String(), "")
	}

	if d.EnterArgs != decl.UnknownArgs && d.EnterArgs != len(params) {
		diags.AddInfo(diagnostic.CodeArgCountMismatch,
			fmt.Sprintf("declares %d entry arguments but lists %d", d.EnterArgs, len(params)), d.String(), "")
	}

	for _, p := range params {
		if _, ok := table.Lookup(p.Type); ok {
			continue
		}

		strategy, _ := capture.Classify(table, p.Type)
		diags.AddInfo(diagnostic.CodeUnclassifiedType,
			fmt.Sprintf("type %q is not classified, captured with %s (%s)", p.Type, capture.StoreU64, strategy),
			d.String(), p.Name)
	}

	return diags
}
