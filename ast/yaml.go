package ast

// The MarshalYAML methods give every node a tagged mapping so that a
// dumped Program reads like the tree it is.

func (c Call) MarshalYAML() (any, error) {
	return struct {
		Call string  `yaml:"call"`
		Kind string  `yaml:"kind"`
		Args []Value `yaml:"args,omitempty"`
	}{c.Callee.Name(), c.Callee.Kind.String(), c.Args}, nil
}

func (a Assign) MarshalYAML() (any, error) {
	return struct {
		Assign string `yaml:"assign"`
		Name   string `yaml:"name"`
		Value  Value  `yaml:"value"`
	}{a.Op.String(), a.Name, a.Rhs}, nil
}

func (i If) MarshalYAML() (any, error) {
	return struct {
		If   Value       `yaml:"if"`
		Body []Statement `yaml:"body"`
	}{i.Cond, i.Body}, nil
}

func (w While) MarshalYAML() (any, error) {
	return struct {
		While Value       `yaml:"while"`
		Body  []Statement `yaml:"body"`
	}{w.Cond, w.Body}, nil
}

func (p ProcDecl) MarshalYAML() (any, error) {
	return struct {
		To     string      `yaml:"to"`
		Params []string    `yaml:"params,flow"`
		Body   []Statement `yaml:"body"`
	}{p.Name, p.Params, p.Body}, nil
}

func (l Lit) MarshalYAML() (any, error) {
	return struct {
		Literal string `yaml:"literal"`
		Kind    string `yaml:"kind"`
	}{l.Val.String(), l.Val.Kind().String()}, nil
}

func (v VarRef) MarshalYAML() (any, error) {
	return struct {
		Var string `yaml:"var"`
	}{string(v)}, nil
}

func (b Binary) MarshalYAML() (any, error) {
	return struct {
		Op  string `yaml:"op"`
		Lhs Value  `yaml:"lhs"`
		Rhs Value  `yaml:"rhs"`
	}{b.Op.String(), b.Lhs, b.Rhs}, nil
}
