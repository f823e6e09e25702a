package ast

import "strings"

// The String methods render nodes back into source form.  Blocks are
// rendered one statement per line with tab indentation.

func (c Call) String() string {
	var sb strings.Builder
	sb.WriteString(c.Callee.Name())
	for _, a := range c.Args {
		sb.WriteByte(' ')
		sb.WriteString(a.String())
	}
	return sb.String()
}

func (a Assign) String() string {
	return a.Op.String() + ` "` + a.Name + " " + a.Rhs.String()
}

func (i If) String() string {
	return "IF " + i.Cond.String() + " " + block(i.Body)
}

func (w While) String() string {
	return "WHILE " + w.Cond.String() + " " + block(w.Body)
}

func (p ProcDecl) String() string {
	var sb strings.Builder
	sb.WriteString("TO ")
	sb.WriteString(p.Name)
	for _, s := range p.Params {
		sb.WriteString(" :")
		sb.WriteString(s)
	}
	sb.WriteByte('\n')
	writeBody(&sb, p.Body)
	sb.WriteString("END")
	return sb.String()
}

func (l Lit) String() string { return `"` + l.Val.String() }

func (v VarRef) String() string { return ":" + string(v) }

func (b Binary) String() string {
	return b.Op.String() + " " + b.Lhs.String() + " " + b.Rhs.String()
}

func (p Program) String() string {
	xs := make([]string, len(p))
	for i, s := range p {
		xs[i] = s.String()
	}
	return strings.Join(xs, "\n")
}

func block(body []Statement) string {
	var sb strings.Builder
	sb.WriteString("[\n")
	writeBody(&sb, body)
	sb.WriteByte(']')
	return sb.String()
}

func writeBody(sb *strings.Builder, body []Statement) {
	for _, s := range body {
		for _, ln := range strings.Split(s.String(), "\n") {
			sb.WriteByte('\t')
			sb.WriteString(ln)
			sb.WriteByte('\n')
		}
	}
}
