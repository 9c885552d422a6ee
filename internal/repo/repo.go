package repo

import (
	"github.com/kepha-wiz/ministers/internal/pg"
	ministerrepo "github.com/kepha-wiz/ministers/internal/repo/minister-repo"
	paymentrepo "github.com/kepha-wiz/ministers/internal/repo/payment-repo"
	userrepo "github.com/kepha-wiz/ministers/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repository
	MinisterRepo *ministerrepo.Repository
	PaymentRepo  *paymentrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	ministerRepo := ministerrepo.New(conn, txManager)
	paymentRepo := paymentrepo.New(conn)

	return &Repositories{
		UserRepo:     userRepo,
		MinisterRepo: ministerRepo,
		PaymentRepo:  paymentRepo,
	}
}
