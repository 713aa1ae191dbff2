package convert

import (
	"log"

	"github.com/goplus/cbgen/ast"
	"github.com/goplus/cbgen/cl/nc"
)

// Callback joins one event of the callback identifier enum to the
// signature its handler must have.
type Callback struct {
	Event   string    // event short-name, the manifest key
	Ident   string    // enum member naming the event in the registration call
	Stub    string    // generated handler name
	Typedef string    // function pointer typedef declaring the signature
	Sig     *ast.Type // function type pointed to by Typedef
}

// Join walks the members of decls.Callbacks in declared order and keeps the
// ones with a matching function pointer typedef. Members without a typedef,
// typedefs without a member and repeated events are dropped.
func Join(decls *Decls, conv nc.NameConverter) []*Callback {
	types := NewTypes()
	for _, td := range decls.Typedefs {
		types.Register(td.Name, td)
	}

	var cbs []*Callback
	seen := make(map[string]bool)
	for _, item := range decls.Callbacks.Items {
		event, ok := conv.EventName(item.Name)
		if !ok {
			if debugJoin {
				log.Printf("Join: member %s does not name an event\n", item.Name)
			}
			continue
		}
		if seen[event] {
			continue
		}
		name := conv.TypedefName(event)
		td, ok := types.Lookup(name)
		if !ok {
			if debugJoin {
				log.Printf("Join: no typedef %s for %s, skipped\n", name, item.Name)
			}
			continue
		}
		seen[event] = true
		cbs = append(cbs, &Callback{
			Event:   event,
			Ident:   item.Name,
			Stub:    conv.StubName(event),
			Typedef: td.Name,
			Sig:     td.Type.FuncPointee(),
		})
	}
	if debugJoin {
		log.Printf("Join: %d of %d members joined\n", len(cbs), len(decls.Callbacks.Items))
	}
	return cbs
}
