package web

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/application/productview"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
)

// ProductForm valores crudos del formulario del modal. EditingID viaja oculto y
// vacío significa crear.
type ProductForm struct {
	EditingID string `form:"editing_id"`
	Name     string `form:"name" validate:"required,max=200"`
	Price    string `form:"price" validate:"required,numeric,nonnegative"`
	Stock    string `form:"stock" validate:"required,number"`
	ImageURL string `form:"image_url" validate:"omitempty,url"`
}

// FieldErrors campo (nombre del form) -> mensaje.
type FieldErrors map[string]string

// FormModal datos del modal: abierto/cerrado, producto en edición (nil = crear),
// valores y errores de validación.
type FormModal struct {
	Open    bool
	Editing *entity.Product
	Title   string
	Values  ProductForm
	Errors  FieldErrors
}

// NewFormModal arma el modal desde el estado de la vista. Si values es nil se
// precarga con el producto en edición (o vacío en modo creación).
func NewFormModal(m productview.ModalState, values *ProductForm, errs FieldErrors) FormModal {
	fm := FormModal{Open: m.IsOpen(), Editing: m.Editing(), Title: "Tambah Produk", Errors: errs}
	if fm.Editing != nil {
		fm.Title = "Edit Produk"
	}
	switch {
	case values != nil:
		fm.Values = *values
	case fm.Editing != nil:
		fm.Values = FormFromProduct(*fm.Editing)
	}
	return fm
}

// FormFromProduct precarga el formulario con un producto existente.
func FormFromProduct(p entity.Product) ProductForm {
	return ProductForm{
		EditingID: p.ID,
		Name:      p.Name,
		Price:     p.Price.String(),
		Stock:     strconv.Itoa(p.Stock),
		ImageURL:  p.ImageURL,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	_ = v.RegisterValidation("nonnegative", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil && !d.IsNegative()
	})
	return v
}

// Validate valida el formulario y lo convierte en payload. Si hay errores el
// payload no es utilizable y el modal debe volver a mostrarse.
func (f ProductForm) Validate() (dto.ProductPayload, FieldErrors) {
	f.Name = strings.TrimSpace(f.Name)
	f.Price = strings.TrimSpace(f.Price)
	f.Stock = strings.TrimSpace(f.Stock)
	f.ImageURL = strings.TrimSpace(f.ImageURL)

	errs := FieldErrors{}
	if err := validate.Struct(f); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ve {
				if _, seen := errs[fe.Field()]; !seen {
					errs[fe.Field()] = messageForTag(fe.Tag())
				}
			}
		} else {
			errs["_"] = "Data formulir tidak valid."
		}
		return dto.ProductPayload{}, errs
	}

	price, err := decimal.NewFromString(f.Price)
	if err != nil {
		errs["price"] = messageForTag("numeric")
	}
	stock, err := strconv.Atoi(f.Stock)
	if err != nil {
		errs["stock"] = messageForTag("number")
	}
	if len(errs) > 0 {
		return dto.ProductPayload{}, errs
	}
	return dto.ProductPayload{Name: f.Name, Price: price, Stock: stock, ImageURL: f.ImageURL}, nil
}

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "Wajib diisi."
	case "max":
		return "Terlalu panjang."
	case "numeric":
		return "Harus berupa angka."
	case "number":
		return "Harus berupa bilangan bulat tidak negatif."
	case "nonnegative":
		return "Tidak boleh negatif."
	case "url":
		return "URL tidak valid."
	default:
		return "Nilai tidak valid."
	}
}
