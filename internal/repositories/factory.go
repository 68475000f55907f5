package repositories

// Kind identifies a repository inside a Factory.
type Kind int

const (
	KindUser Kind = iota
	KindClient
	KindEquipment
	KindRequest
	KindOffer
)

// Registry hands out the repositories of one unit of work.
type Registry interface {
	Users() UserRepositoryInterface
	Clients() ClientRepositoryInterface
	Equipment() EquipmentRepositoryInterface
	Requests() RequestRepositoryInterface
	Offers() OfferRepositoryInterface
}

// Factory builds repositories bound to a single Querier and keeps one instance per Kind.
// It lives exactly as long as its unit of work and is not safe for concurrent use.
type Factory struct {
	storage Querier
	repos   map[Kind]interface{}
}

func NewFactory(storage Querier) *Factory {
	return &Factory{
		storage: storage,
		repos:   make(map[Kind]interface{}),
	}
}

func (f *Factory) get(kind Kind, build func(Querier) interface{}) interface{} {
	if repo, ok := f.repos[kind]; ok {
		return repo
	}
	repo := build(f.storage)
	f.repos[kind] = repo
	return repo
}

func (f *Factory) Users() UserRepositoryInterface {
	return f.get(KindUser, func(q Querier) interface{} { return NewUserRepository(q) }).(UserRepositoryInterface)
}

func (f *Factory) Clients() ClientRepositoryInterface {
	return f.get(KindClient, func(q Querier) interface{} { return NewClientRepository(q) }).(ClientRepositoryInterface)
}

func (f *Factory) Equipment() EquipmentRepositoryInterface {
	return f.get(KindEquipment, func(q Querier) interface{} { return NewEquipmentRepository(q) }).(EquipmentRepositoryInterface)
}

func (f *Factory) Requests() RequestRepositoryInterface {
	return f.get(KindRequest, func(q Querier) interface{} { return NewRequestRepository(q) }).(RequestRepositoryInterface)
}

func (f *Factory) Offers() OfferRepositoryInterface {
	return f.get(KindOffer, func(q Querier) interface{} { return NewOfferRepository(q) }).(OfferRepositoryInterface)
}
