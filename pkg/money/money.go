// Package money formatea montos para la interfaz según la configuración regional.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea precios con prefijo de moneda y separadores de miles locales.
type Formatter struct {
	prefix  string
	printer *message.Printer
	group   string // separador de miles del locale, para enteros fuera de int64
}

// NewFormatter construye un Formatter. locale es un tag BCP 47 ("id", "es-CO"...);
// si no se puede interpretar se usa indonesio.
func NewFormatter(prefix, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Indonesian
	}
	p := message.NewPrinter(tag)
	return &Formatter{
		prefix:  strings.TrimSpace(prefix),
		printer: p,
		group:   strings.Trim(p.Sprint(number.Decimal(1000)), "10"),
	}
}

// Format devuelve "<prefijo> <monto>", ej. 15000 -> "Rp 15.000" en locale id.
// Se muestran hasta 3 decimales, igual que Intl.NumberFormat por defecto.
func (f *Formatter) Format(amount decimal.Decimal) string {
	var n string
	switch {
	case amount.IsInteger() && amount.BigInt().IsInt64():
		n = f.printer.Sprintf("%d", amount.IntPart())
	case amount.IsInteger():
		n = f.groupDigits(amount.String())
	default:
		n = f.printer.Sprint(number.Decimal(amount.Round(3).InexactFloat64(), number.MaxFractionDigits(3)))
	}
	if f.prefix == "" {
		return n
	}
	return f.prefix + " " + n
}

// groupDigits agrupa de a tres los dígitos de un entero en texto ("-1234" -> "-1.234").
func (f *Formatter) groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var b strings.Builder
	b.WriteString(sign)
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteRune(r)
	}
	return b.String()
}
