package convert

import (
	"bytes"
	"fmt"
)

// Registrar describes how a stub is bound to its event.
type Registrar struct {
	Func         string // routine emitted, e.g. nrm_ompt_register_cbs
	SetCallback  string // registration entry point, e.g. nrm_ompt_set_callback
	CallbackType string // generic callback pointer type the stub is cast to
	ResultType   string // type of the registration result, empty to not declare it
	Success      string // result a mandatory registration must return
}

// EmitRegister writes the registration routine: one call per callback, in
// order, followed by an assertion on the result when the event is mandatory.
func EmitRegister(b *bytes.Buffer, cbs []*Callback, mandatory func(event string) bool, r *Registrar) {
	fmt.Fprintf(b, "void %s(void)\n{\n", r.Func)
	if r.ResultType != "" {
		fmt.Fprintf(b, "\t%s ret;\n", r.ResultType)
	}
	b.WriteString("\n")
	for _, cb := range cbs {
		fmt.Fprintf(b, "\tret = %s(\n\t\t%s,\n\t\t(%s)%s);\n", r.SetCallback, cb.Ident, r.CallbackType, cb.Stub)
		if mandatory != nil && mandatory(cb.Event) {
			fmt.Fprintf(b, "\tassert(ret == %s);\n", r.Success)
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
}
