package ncimpl

import (
	"strings"

	"github.com/goplus/cbgen/cl/nc"
)

// Converter derives names by fixed suffixes:
//
//	member:  event + MemberSuffix
//	typedef: event + TypeSuffix
//	stub:    StubPrefix + event + StubSuffix
type Converter struct {
	MemberSuffix string
	TypeSuffix   string
	StubPrefix   string
	StubSuffix   string
}

var _ nc.NameConverter = (*Converter)(nil)

func (p *Converter) EventName(member string) (string, bool) {
	if p.MemberSuffix == "" {
		return member, member != ""
	}
	event, ok := strings.CutSuffix(member, p.MemberSuffix)
	return event, ok && event != ""
}

func (p *Converter) TypedefName(event string) string {
	return event + p.TypeSuffix
}

func (p *Converter) StubName(event string) string {
	return p.StubPrefix + event + p.StubSuffix
}
