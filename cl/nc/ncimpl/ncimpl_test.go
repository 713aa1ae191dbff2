package ncimpl

import "testing"

func TestConverter(t *testing.T) {
	ompt := &Converter{TypeSuffix: "_t", StubPrefix: "nrm_", StubSuffix: "_cb"}
	event, ok := ompt.EventName("ompt_callback_thread_begin")
	if !ok || event != "ompt_callback_thread_begin" {
		t.Fatalf("unexpected event: %q %v", event, ok)
	}
	if got := ompt.TypedefName(event); got != "ompt_callback_thread_begin_t" {
		t.Fatalf("unexpected typedef name: %q", got)
	}
	if got := ompt.StubName(event); got != "nrm_ompt_callback_thread_begin_cb" {
		t.Fatalf("unexpected stub name: %q", got)
	}
	if _, ok := ompt.EventName(""); ok {
		t.Fatal("empty member should not map to an event")
	}
}

func TestConverterMemberSuffix(t *testing.T) {
	p := &Converter{MemberSuffix: "_id", TypeSuffix: "_fn"}
	testCases := []struct {
		member string
		event  string
		ok     bool
	}{
		{"EV_A_id", "EV_A", true},
		{"EV_A", "EV_A", false},
		{"_id", "", false},
	}
	for _, tc := range testCases {
		event, ok := p.EventName(tc.member)
		if ok != tc.ok || (ok && event != tc.event) {
			t.Errorf("EventName(%q) = %q, %v; want %q, %v", tc.member, event, ok, tc.event, tc.ok)
		}
	}
	if got := p.StubName("EV_A"); got != "EV_A" {
		t.Fatalf("unexpected stub name: %q", got)
	}
}
