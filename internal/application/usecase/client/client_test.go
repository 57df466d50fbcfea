package client

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

type fakeClientRepo struct {
	clients map[uint]*entity.Client
	nextID  uint
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uint]*entity.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, client *entity.Client) error {
	r.nextID++
	client.ID = r.nextID
	stored := *client
	r.clients[client.ID] = &stored
	return nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *entity.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return domainerror.ErrClientNotFound
	}
	stored := *client
	r.clients[client.ID] = &stored
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id uint) error {
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id uint) (*entity.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, domainerror.ErrClientNotFound
	}
	copied := *client
	return &copied, nil
}

func (r *fakeClientRepo) FindByIDs(_ context.Context, ids []uint) ([]*entity.Client, error) {
	var result []*entity.Client
	for _, id := range ids {
		if client, ok := r.clients[id]; ok {
			copied := *client
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeClientRepo) FindAll(_ context.Context) ([]*entity.Client, error) {
	var result []*entity.Client
	for _, client := range r.clients {
		copied := *client
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

var _ adapter.ClientRepository = (*fakeClientRepo)(nil)

func validFields() ClientFields {
	return ClientFields{
		Name:          "Empresa Exemplo Ltda",
		TaxID:         "12.345.678/0001-90",
		Email:         "financeiro@exemplo.com.br",
		AreaCode:      "11",
		Phone:         "98765-4321",
		City:          "São Paulo",
		State:         "sp",
		NominalAmount: decimal.RequireFromString("199.90"),
		DueDay:        10,
	}
}

func TestCreateClientUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a client and normalizes fields", func(t *testing.T) {
		repo := newFakeClientRepo()
		uc := NewCreateClientUseCase(repo)

		fields := validFields()
		fields.Name = "  Empresa Exemplo Ltda  "
		output, err := uc.Execute(ctx, CreateClientInput{ClientFields: fields})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Client.ID == 0 {
			t.Error("client ID must be assigned")
		}
		if output.Client.Name != "Empresa Exemplo Ltda" {
			t.Errorf("name must be trimmed, got %q", output.Client.Name)
		}
		if output.Client.State != "SP" {
			t.Errorf("state must be uppercased, got %q", output.Client.State)
		}
	})

	t.Run("validation rejections", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*ClientFields)
			want   error
		}{
			{"blank name", func(f *ClientFields) { f.Name = "   " }, domainerror.ErrClientNameRequired},
			{"blank tax id", func(f *ClientFields) { f.TaxID = "" }, domainerror.ErrClientTaxIDRequired},
			{"due day zero", func(f *ClientFields) { f.DueDay = 0 }, domainerror.ErrClientInvalidDueDay},
			{"due day too high", func(f *ClientFields) { f.DueDay = 32 }, domainerror.ErrClientInvalidDueDay},
			{"zero amount", func(f *ClientFields) { f.NominalAmount = decimal.Zero }, domainerror.ErrClientInvalidAmount},
			{"negative amount", func(f *ClientFields) { f.NominalAmount = decimal.RequireFromString("-1") }, domainerror.ErrClientInvalidAmount},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := newFakeClientRepo()
				fields := validFields()
				tc.mutate(&fields)

				_, err := NewCreateClientUseCase(repo).Execute(ctx, CreateClientInput{ClientFields: fields})
				if !errors.Is(err, tc.want) {
					t.Errorf("expected %v, got %v", tc.want, err)
				}
				if len(repo.clients) != 0 {
					t.Error("nothing must be persisted on validation failure")
				}
			})
		}
	})
}

func TestUpdateClientUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces all fields", func(t *testing.T) {
		repo := newFakeClientRepo()
		created, err := NewCreateClientUseCase(repo).Execute(ctx, CreateClientInput{ClientFields: validFields()})
		if err != nil {
			t.Fatal(err)
		}

		fields := validFields()
		fields.Name = "Empresa Renomeada"
		fields.NominalAmount = decimal.RequireFromString("250.00")
		fields.DueDay = 5

		output, err := NewUpdateClientUseCase(repo).Execute(ctx, UpdateClientInput{
			ClientID:     created.Client.ID,
			ClientFields: fields,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Client.Name != "Empresa Renomeada" || output.Client.DueDay != 5 {
			t.Errorf("fields not replaced: %+v", output.Client)
		}
		stored := repo.clients[created.Client.ID]
		if !stored.NominalAmount.Equal(decimal.RequireFromString("250.00")) {
			t.Errorf("amount not persisted, got %s", stored.NominalAmount)
		}
	})

	t.Run("rejects an unknown client", func(t *testing.T) {
		uc := NewUpdateClientUseCase(newFakeClientRepo())
		_, err := uc.Execute(ctx, UpdateClientInput{ClientID: 99, ClientFields: validFields()})
		if !errors.Is(err, domainerror.ErrClientNotFound) {
			t.Errorf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("validates before persisting", func(t *testing.T) {
		repo := newFakeClientRepo()
		created, err := NewCreateClientUseCase(repo).Execute(ctx, CreateClientInput{ClientFields: validFields()})
		if err != nil {
			t.Fatal(err)
		}

		fields := validFields()
		fields.DueDay = 40
		_, err = NewUpdateClientUseCase(repo).Execute(ctx, UpdateClientInput{
			ClientID:     created.Client.ID,
			ClientFields: fields,
		})
		if !errors.Is(err, domainerror.ErrClientInvalidDueDay) {
			t.Errorf("expected ErrClientInvalidDueDay, got %v", err)
		}
		if repo.clients[created.Client.ID].DueDay != 10 {
			t.Error("stored client must be untouched on validation failure")
		}
	})
}

func TestDeleteClientUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing client", func(t *testing.T) {
		repo := newFakeClientRepo()
		created, err := NewCreateClientUseCase(repo).Execute(ctx, CreateClientInput{ClientFields: validFields()})
		if err != nil {
			t.Fatal(err)
		}

		output, err := NewDeleteClientUseCase(repo).Execute(ctx, DeleteClientInput{ClientID: created.Client.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected success")
		}
		if len(repo.clients) != 0 {
			t.Error("client must be removed")
		}
	})

	t.Run("rejects an unknown client", func(t *testing.T) {
		uc := NewDeleteClientUseCase(newFakeClientRepo())
		_, err := uc.Execute(ctx, DeleteClientInput{ClientID: 99})
		if !errors.Is(err, domainerror.ErrClientNotFound) {
			t.Errorf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestListClientsUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newFakeClientRepo()
	create := NewCreateClientUseCase(repo)

	for _, name := range []string{"Bravo Ltda", "Alfa Ltda"} {
		fields := validFields()
		fields.Name = name
		if _, err := create.Execute(ctx, CreateClientInput{ClientFields: fields}); err != nil {
			t.Fatal(err)
		}
	}

	output, err := NewListClientsUseCase(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Clients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(output.Clients))
	}
	if output.Clients[0].Name != "Alfa Ltda" || output.Clients[1].Name != "Bravo Ltda" {
		t.Errorf("clients must be ordered by name: %q, %q", output.Clients[0].Name, output.Clients[1].Name)
	}
}

func TestGetClientUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newFakeClientRepo()
	created, err := NewCreateClientUseCase(repo).Execute(ctx, CreateClientInput{ClientFields: validFields()})
	if err != nil {
		t.Fatal(err)
	}

	got, err := NewGetClientUseCase(repo).Execute(ctx, created.Client.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != created.Client.Name {
		t.Errorf("unexpected client %+v", got)
	}

	if _, err := NewGetClientUseCase(repo).Execute(ctx, 99); !errors.Is(err, domainerror.ErrClientNotFound) {
		t.Errorf("expected ErrClientNotFound, got %v", err)
	}
}
