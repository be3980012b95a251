package catalogo

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sdiagne/ferreteria/internal/domain/models"
	"github.com/sdiagne/ferreteria/internal/repository/mongodb"
)

// ErrClienteNotFound signals that the referenced client does not exist.
var ErrClienteNotFound = errors.New("cliente not found")

// ClienteService exposes client CRUD operations.
type ClienteService struct {
	repo   mongodb.ClienteRepository
	logger *zap.Logger
}

// NewClienteService wires a client service instance.
func NewClienteService(repo mongodb.ClienteRepository, logger *zap.Logger) *ClienteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClienteService{repo: repo, logger: logger}
}

// Create persists a new client with a generated id, a zero sales counter and
// the current registration timestamp.
func (s *ClienteService) Create(ctx context.Context, in models.ClienteCreate) (*models.Cliente, error) {
	cliente := models.NewCliente(in)
	if err := s.repo.Insert(ctx, cliente); err != nil {
		return nil, fmt.Errorf("create cliente: %w", err)
	}
	s.logger.Info("cliente created", zap.String("id", cliente.ID))
	return &cliente, nil
}

// Get fetches a client by id.
func (s *ClienteService) Get(ctx context.Context, id string) (*models.Cliente, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, mongodb.ErrNotFound) {
		return nil, ErrClienteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return cliente, nil
}

// List returns all clients in store order, capped by the repository.
func (s *ClienteService) List(ctx context.Context) ([]models.Cliente, error) {
	clientes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return clientes, nil
}

// Update replaces the mutable fields of an existing client.
func (s *ClienteService) Update(ctx context.Context, id string, in models.ClienteCreate) (*models.Cliente, error) {
	cliente, err := s.repo.Update(ctx, id, in)
	if errors.Is(err, mongodb.ErrNotFound) {
		return nil, ErrClienteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update cliente: %w", err)
	}
	return cliente, nil
}

// Delete removes a client. Sales referencing it are left untouched.
func (s *ClienteService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, mongodb.ErrNotFound) {
		return ErrClienteNotFound
	}
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	s.logger.Info("cliente deleted", zap.String("id", id))
	return nil
}
