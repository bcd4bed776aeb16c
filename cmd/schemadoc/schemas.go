package main

import (
	"github.com/dmitrymomot/fieldkit/pkg/config"
	"github.com/dmitrymomot/fieldkit/pkg/field"
	"github.com/dmitrymomot/fieldkit/pkg/pagination"
)

type productStatus string

const (
	statusDraft     productStatus = "draft"
	statusPublished productStatus = "published"
	statusArchived  productStatus = "archived"
)

func productStatuses() []productStatus {
	return []productStatus{statusDraft, statusPublished, statusArchived}
}

// catalog holds the DTOs published by the example service.
type catalog struct {
	translation   *field.Schema
	createProduct *field.Schema
	contact       *field.Schema
}

func newCatalog(settings config.Settings) *catalog {
	c := &catalog{}

	c.translation = field.NewSchema("TranslationDto",
		field.Named("languageCode", field.String(field.StringOptions{ToLowerCase: true, MinLength: field.Ptr(2), MaxLength: field.Ptr(8), Example: "en"})),
		field.Named("text", field.String(field.StringOptions{MaxLength: field.Ptr(500), Example: "Wireless headphones"})),
	)

	c.createProduct = field.NewSchema("CreateProductDto",
		field.Named("sku", field.String(field.StringOptions{ToUpperCase: true, MinLength: field.Ptr(3), MaxLength: field.Ptr(32), Example: "HP-100"})),
		field.Named("titles", field.TranslationSet(func() *field.Schema { return c.translation }, field.TranslationOptions{
			Languages:   settings.LanguageCount(),
			Description: "One title per supported language",
		})),
		field.Named("price", field.Number(field.NumberOptions{Positive: true, Description: "Price in minor units", Int: true})),
		field.Named("status", field.Enum(productStatuses, field.EnumOptions{Name: "ProductStatus"})),
		field.Named("categoryIds", field.UUIDOptional(field.UUIDOptions{Each: true})),
		field.Named("tags", field.StringOptional(field.StringOptions{Each: true, ToLowerCase: true, MaxLength: field.Ptr(24)})),
		field.Named("homepage", field.URLOptional(field.URLOptions{})),
		field.Named("available", field.BooleanOptional(field.BooleanOptions{})),
		field.Named("releasedAt", field.DateOptional(field.DateOptions{})),
	)

	c.contact = field.NewSchema("ContactDto",
		field.Named("email", field.Email(field.EmailOptions{MaxLength: field.Ptr(254)})),
		field.Named("phone", field.PhoneOptional(field.PhoneOptions{Region: settings.Region()})),
		field.Named("password", field.Password(field.PasswordOptions{MinLength: field.Ptr(8), MaxLength: field.Ptr(64)})),
	)

	return c
}

// all lists every published schema. Nested schemas are collected by the
// document itself.
func (c *catalog) all() []*field.Schema {
	return []*field.Schema{
		c.createProduct,
		c.contact,
		pagination.OptionsSchema,
		pagination.MetaSchema,
	}
}

func (c *catalog) lookup(name string) (*field.Schema, bool) {
	for _, s := range append(c.all(), c.translation) {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}
