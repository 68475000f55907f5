package seeders

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"procurement-api/internal/entities"
	"procurement-api/internal/infrastructure/bd"
	"procurement-api/internal/repositories"
	"procurement-api/pkg/types"
	"procurement-api/pkg/utils"
)

// Options selects which tables get sample rows and how many per table.
type Options struct {
	Users     bool
	Clients   bool
	Equipment bool
	Requests  bool
	Offers    bool
	Count     int
}

func (o Options) Any() bool {
	return o.Users || o.Clients || o.Equipment || o.Requests || o.Offers
}

type Seeder struct {
	uow    repositories.UnitOfWork
	rnd    *rand.Rand
	logger *zap.Logger
}

func NewSeeder(uow repositories.UnitOfWork, seed uint64, logger *zap.Logger) *Seeder {
	return &Seeder{
		uow:    uow,
		rnd:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		logger: logger,
	}
}

// Run inserts everything in one unit of work, so a failure leaves the database untouched.
// Requests and offers reuse rows already present when their parents are not seeded in the same run.
func (s *Seeder) Run(ctx context.Context, opts Options) error {
	if opts.Count <= 0 {
		return fmt.Errorf("seed: count must be positive, got %d", opts.Count)
	}

	return s.uow.Do(ctx, func(repos repositories.Registry) error {
		if opts.Users {
			if err := s.seedUsers(ctx, repos.Users(), opts.Count); err != nil {
				return err
			}
		}

		var clientIDs, equipmentIDs, requestIDs []uint64
		var err error

		if opts.Clients {
			if clientIDs, err = s.seedClients(ctx, repos.Clients(), opts.Count); err != nil {
				return err
			}
		}
		if opts.Equipment {
			if equipmentIDs, err = s.seedEquipment(ctx, repos.Equipment(), opts.Count); err != nil {
				return err
			}
		}

		if opts.Requests {
			if len(clientIDs) == 0 {
				if clientIDs, err = existingIDs(ctx, repos.Clients().List); err != nil {
					return err
				}
			}
			if requestIDs, err = s.seedRequests(ctx, repos.Requests(), clientIDs, opts.Count); err != nil {
				return err
			}
		}

		if opts.Offers {
			if len(requestIDs) == 0 {
				if requestIDs, err = existingIDs(ctx, repos.Requests().List); err != nil {
					return err
				}
			}
			if len(equipmentIDs) == 0 {
				if equipmentIDs, err = existingIDs(ctx, repos.Equipment().List); err != nil {
					return err
				}
			}
			if err := s.seedOffers(ctx, repos.Offers(), requestIDs, equipmentIDs, opts.Count); err != nil {
				return err
			}
		}
		return nil
	})
}

func existingIDs[T interface{ GetID() uint64 }](ctx context.Context, list func(context.Context, bd.ListFilter) ([]T, error)) ([]uint64, error) {
	rows, err := list(ctx, bd.NewListFilter(types.Page{Limit: types.MaxLimit}))
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.GetID())
	}
	return ids, nil
}

func (s *Seeder) seedUsers(ctx context.Context, repo repositories.UserRepositoryInterface, n int) error {
	s.logger.Info("seeding users", zap.Int("count", n))
	for i := 0; i < n; i++ {
		u, err := s.newUser()
		if err != nil {
			return err
		}
		if _, err := repo.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
	}
	return nil
}

func (s *Seeder) seedClients(ctx context.Context, repo repositories.ClientRepositoryInterface, n int) ([]uint64, error) {
	s.logger.Info("seeding clients", zap.Int("count", n))
	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		c := s.newClient()
		created, err := repo.Create(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("seed client %q: %w", c.Email, err)
		}
		ids = append(ids, created.ID)
	}
	return ids, nil
}

func (s *Seeder) seedEquipment(ctx context.Context, repo repositories.EquipmentRepositoryInterface, n int) ([]uint64, error) {
	s.logger.Info("seeding equipment", zap.Int("count", n))
	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		e := s.newEquipment()
		created, err := repo.Create(ctx, e)
		if err != nil {
			return nil, fmt.Errorf("seed equipment %q: %w", e.SerialNumber, err)
		}
		ids = append(ids, created.ID)
	}
	return ids, nil
}

func (s *Seeder) seedRequests(ctx context.Context, repo repositories.RequestRepositoryInterface, clientIDs []uint64, n int) ([]uint64, error) {
	if len(clientIDs) == 0 {
		return nil, fmt.Errorf("seed requests: no clients to attach them to, seed clients first")
	}
	s.logger.Info("seeding requests", zap.Int("count", n))
	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		r := s.newRequest(pick(s.rnd, clientIDs))
		created, err := repo.Create(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("seed request: %w", err)
		}
		ids = append(ids, created.ID)
	}
	return ids, nil
}

func (s *Seeder) seedOffers(ctx context.Context, repo repositories.OfferRepositoryInterface, requestIDs, equipmentIDs []uint64, n int) error {
	if len(requestIDs) == 0 || len(equipmentIDs) == 0 {
		return fmt.Errorf("seed offers: need at least one request and one equipment item")
	}
	s.logger.Info("seeding offers", zap.Int("count", n))
	for i := 0; i < n; i++ {
		o := s.newOffer(pick(s.rnd, requestIDs), pick(s.rnd, equipmentIDs))
		if _, err := repo.Create(ctx, o); err != nil {
			return fmt.Errorf("seed offer: %w", err)
		}
	}
	return nil
}

func pick[T any](rnd *rand.Rand, items []T) T {
	return items[rnd.IntN(len(items))]
}

// suffix keeps unique columns unique across repeated seed runs.
func suffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func (s *Seeder) phone() string {
	return fmt.Sprintf("+1555%07d", s.rnd.IntN(10_000_000))
}

func (s *Seeder) newUser() (*entities.User, error) {
	first, last := pick(s.rnd, firstNames), pick(s.rnd, lastNames)
	tag := suffix()

	hashed, err := utils.HashPassword("password-" + tag)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		BaseEntity:     types.NewBaseEntity(),
		Username:       strings.ToLower(first) + "_" + tag,
		Email:          strings.ToLower(first+"."+last) + "." + tag + "@example.com",
		FullName:       first + " " + last,
		HashedPassword: hashed,
		Role:           pick(s.rnd, userRoles),
		PhoneNumber:    null.StringFrom(s.phone()),
	}, nil
}

func (s *Seeder) newClient() *entities.Client {
	company := pick(s.rnd, companyWords) + " " + pick(s.rnd, companyKinds)
	contact := pick(s.rnd, firstNames) + " " + pick(s.rnd, lastNames)
	domain := strings.ToLower(strings.ReplaceAll(company, " ", ""))

	return &entities.Client{
		BaseEntity:    types.NewBaseEntity(),
		Name:          company,
		Email:         "procurement." + suffix() + "@" + domain + ".com",
		PhoneNumber:   null.StringFrom(s.phone()),
		Address:       null.StringFrom(fmt.Sprintf("%d Market St, %s", 1+s.rnd.IntN(999), pick(s.rnd, cities))),
		CompanyName:   null.StringFrom(company),
		ContactPerson: null.StringFrom(contact),
		Notes:         null.StringFrom("Generated sample client"),
		Tags: entities.TagsToList(map[string]string{
			"industry": pick(s.rnd, industries),
			"size":     pick(s.rnd, sizes),
		}),
	}
}

func (s *Seeder) newEquipment() *entities.Equipment {
	purchased := time.Now().UTC().AddDate(0, 0, -s.rnd.IntN(5*365)).Truncate(24 * time.Hour)
	warranty := purchased.AddDate(0, 0, 365+s.rnd.IntN(730))
	manufacturer := pick(s.rnd, manufacturers)

	return &entities.Equipment{
		BaseEntity:      types.NewBaseEntity(),
		Name:            manufacturer + " unit",
		Model:           fmt.Sprintf("MOD-%03d", s.rnd.IntN(1000)),
		SerialNumber:    "SN-" + strings.ToUpper(suffix()),
		Manufacturer:    manufacturer,
		Category:        pick(s.rnd, equipmentCategories),
		Status:          pick(s.rnd, equipmentStatuses),
		PurchaseDate:    null.TimeFrom(purchased),
		WarrantyEndDate: null.TimeFrom(warranty),
		Location:        null.StringFrom(pick(s.rnd, cities)),
		Specifications: map[string]interface{}{
			"power":  fmt.Sprintf("%dW", 100+s.rnd.IntN(900)),
			"weight": fmt.Sprintf("%dkg", 10+s.rnd.IntN(90)),
		},
		Tags: entities.TagsToList(map[string]string{"condition": pick(s.rnd, conditions)}),
	}
}

func (s *Seeder) newRequest(clientID uint64) *entities.Request {
	category := pick(s.rnd, equipmentCategories)
	budgetMin := float64(1000 + s.rnd.IntN(4000))
	budgetMax := budgetMin + float64(s.rnd.IntN(15000))

	return &entities.Request{
		BaseEntity:        types.NewBaseEntity(),
		Title:             fmt.Sprintf("Procure %s equipment", category),
		Description:       "Generated sample request for " + category + " hardware",
		ClientID:          clientID,
		EquipmentCategory: category,
		RequiredSpecifications: map[string]interface{}{
			"power": fmt.Sprintf("%dW", 100+s.rnd.IntN(900)),
		},
		Quantity:            1 + s.rnd.IntN(10),
		Priority:            pick(s.rnd, priorities),
		Status:              pick(s.rnd, requestStatuses),
		BudgetMin:           null.Float64From(budgetMin),
		BudgetMax:           null.Float64From(budgetMax),
		Currency:            pick(s.rnd, currencies),
		DesiredDeliveryDate: null.TimeFrom(time.Now().UTC().AddDate(0, 0, 30+s.rnd.IntN(150)).Truncate(24 * time.Hour)),
		Tags:                entities.TagsToList(map[string]string{"urgency": pick(s.rnd, []string{"normal", "urgent"})}),
	}
}

func (s *Seeder) newOffer(requestID, equipmentID uint64) *entities.Offer {
	services := make(map[string]bool, len(extraServices))
	for _, name := range extraServices {
		services[name] = s.rnd.IntN(2) == 1
	}

	return &entities.Offer{
		BaseEntity:           types.NewBaseEntity(),
		RequestID:            requestID,
		EquipmentID:          equipmentID,
		Price:                float64(1000+s.rnd.IntN(19000)) + float64(s.rnd.IntN(100))/100,
		Currency:             pick(s.rnd, currencies),
		Quantity:             1 + s.rnd.IntN(10),
		DeliveryDate:         null.TimeFrom(time.Now().UTC().AddDate(0, 0, 30+s.rnd.IntN(150)).Truncate(24 * time.Hour)),
		WarrantyPeriodMonths: 12 + s.rnd.IntN(25),
		Status:               pick(s.rnd, offerStatuses),
		AdditionalServices:   entities.ServicesToList(services),
		DiscountPercentage:   null.Float64From(float64(s.rnd.IntN(20))),
		PaymentTerms:         pick(s.rnd, paymentTerms),
	}
}
