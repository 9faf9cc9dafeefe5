package handlers

import (
	"tekbir/internal/cart"
	"tekbir/internal/catalog"
	"tekbir/internal/checkout"
	"tekbir/internal/config"
)

type Deps struct {
	CatalogHandler  *CatalogHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	ProfileHandler  *ProfileHandler
}

func NewDeps(cfg config.Config, cat *catalog.Service, sessions *cart.Store, intake *checkout.IntakeClient) *Deps {
	return &Deps{
		CatalogHandler:  &CatalogHandler{Catalog: cat},
		CartHandler:     &CartHandler{Sessions: sessions, Catalog: cat},
		CheckoutHandler: &CheckoutHandler{Sessions: sessions, Catalog: cat, Intake: intake},
		ProfileHandler:  &ProfileHandler{Cfg: cfg},
	}
}
