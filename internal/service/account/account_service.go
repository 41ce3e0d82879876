package account

import (
	"strings"
	"time"

	"github.com/zhanrui-dev/devbus/internal/domain"
	"github.com/zhanrui-dev/devbus/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type AccountUseCase interface {
	// Register creates the identity and logs it in, returning a session
	// token. Duplicate emails fail and leave the existing account intact.
	Register(input RegisterInput) (*Session, error)
	Login(input LoginInput) (*Session, error)
	// Logout revokes the single session identified by tokenID.
	Logout(tokenID string)
	GetByEmail(email string) (*domain.Account, error)
}

// Tokens abstracts session issue/revoke so tests can stub it.
type Tokens interface {
	Issue(email string) (string, error)
	Revoke(id string)
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type AccountService struct {
	accounts   repository.AccountRepository
	tokens     Tokens
	bcryptCost int
	now        func() time.Time
}

func NewAccountService(accounts repository.AccountRepository, tokens Tokens, bcryptCost int) *AccountService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AccountService{
		accounts:   accounts,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
}

func (s *AccountService) Register(input RegisterInput) (*Session, error) {
	name := strings.TrimSpace(input.Name)
	email := domain.NormalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, domain.ErrValidation
	}

	// Passwords are stored hashed. The system this reimplements kept them
	// in plaintext; that is a flagged non-goal, not a behavior to keep.
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	acc := domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.accounts.Create(acc); err != nil {
		return nil, err
	}

	tok, err := s.tokens.Issue(email)
	if err != nil {
		return nil, err
	}
	return &Session{Name: name, Email: email, Token: tok}, nil
}

func (s *AccountService) Login(input LoginInput) (*Session, error) {
	email := domain.NormalizeEmail(input.Email)
	acc, err := s.accounts.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(input.Password)) != nil {
		return nil, domain.ErrBadCredentials
	}

	tok, err := s.tokens.Issue(email)
	if err != nil {
		return nil, err
	}
	return &Session{Name: acc.Name, Email: acc.Email, Token: tok}, nil
}

func (s *AccountService) Logout(tokenID string) {
	s.tokens.Revoke(tokenID)
}

func (s *AccountService) GetByEmail(email string) (*domain.Account, error) {
	return s.accounts.GetByEmail(email)
}

var _ AccountUseCase = (*AccountService)(nil)
