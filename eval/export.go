package eval

import "github.com/signadot/lintcfg/ir"

// Export is the exported value of a module.
type Export struct {
	// Stmt is the statement holding the export: an expression statement
	// whose expression is an assignment to module.exports, or an export
	// default declaration.
	Stmt *ir.Node
	// Value is the exported expression.
	Value *ir.Node
	// ESM is set for export default.
	ESM bool
}

// FindExport returns the last export of prog, or nil when prog exports
// nothing recognizable.
func FindExport(prog *ir.Node) *Export {
	var res *Export
	for _, stmt := range prog.Values {
		switch stmt.Type {
		case ir.ExprStmtType:
			x := stmt.X
			if x != nil && x.Type == ir.AssignType && x.Name == "=" && x.X.IsMember("module", "exports") {
				res = &Export{Stmt: stmt, Value: x.Y}
			}
		case ir.ExportType:
			if stmt.Name == "default" && stmt.X != nil && !stmt.X.Type.IsStatement() && stmt.X.Type != ir.RawType {
				res = &Export{Stmt: stmt, Value: stmt.X, ESM: true}
			}
		}
	}
	return res
}
