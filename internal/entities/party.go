package entities

import "fmt"

type PartyKind string

const (
	PartyDriver     PartyKind = "driver"
	PartyClient     PartyKind = "client"
	PartyThirdParty PartyKind = "third_party"
)

func (k PartyKind) String() string {
	return string(k)
}

func (k PartyKind) IsValid() bool {
	switch k {
	case PartyDriver, PartyClient, PartyThirdParty:
		return true
	}
	return false
}

// Party контрагент, по которому ведётся леджер. Сами справочники водителей, клиентов
// и сторонних курьеров живут во внешней системе, здесь только идентификаторы.
type Party struct {
	Kind PartyKind
	ID   int64
}

func (p Party) String() string {
	return fmt.Sprintf("%s:%d", p.Kind, p.ID)
}

func Driver(id int64) Party {
	return Party{Kind: PartyDriver, ID: id}
}

func Client(id int64) Party {
	return Party{Kind: PartyClient, ID: id}
}

func ThirdParty(id int64) Party {
	return Party{Kind: PartyThirdParty, ID: id}
}
