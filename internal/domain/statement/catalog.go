// Package statement: extracción de los importes fiscales de una liquidación
// de tarjeta Cabal / Credicoop a partir del texto de sus páginas.
//
// El catálogo es declarativo: cada Anchor describe la frase a buscar, las
// reglas de adyacencia con el importe y el acumulador (Bucket) al que suma.
// Cada Concept define una fila del resumen y cómo se deriva de un Bucket.
package statement

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/control-tarjeta/pkg/money"
)

// Bucket acumulador de importes a nivel documento.
type Bucket int

const (
	BucketIVA21 Bucket = iota
	BucketIVA105
	BucketPercepcionRG333
	BucketRetencionIIBB
)

// Adjacency posición del importe respecto de la frase ancla.
type Adjacency int

const (
	// AmountAfter primer literal tras la frase, sin otros dígitos en el medio.
	AmountAfter Adjacency = iota
	// AmountBeforeMinus primer literal (que no sea una alícuota "3,00%") del
	// tramo, si le sigue la marca de signo negativo final ("1.234,56-").
	AmountBeforeMinus
)

// Pick busca el importe en el tramo que sigue a una frase ancla, hasta la
// próxima frase ancla o el fin de la línea. Nunca saltea un literal completo:
// si el primer candidato no cumple la regla, no hay importe.
func (adj Adjacency) Pick(tail string) (string, bool) {
	for _, loc := range money.FindLiterals(tail) {
		rest := strings.TrimLeft(tail[loc[1]:], " \t")
		percent := strings.HasPrefix(rest, "%")
		switch adj {
		case AmountBeforeMinus:
			if percent {
				continue
			}
			if strings.HasPrefix(rest, "-") {
				return tail[loc[0]:loc[1]], true
			}
		default:
			if !percent && !strings.ContainsAny(tail[:loc[0]], "0123456789") {
				return tail[loc[0]:loc[1]], true
			}
		}
		return "", false
	}
	return "", false
}

// Anchor frase fija del resumen que marca un concepto fiscal.
// Rules se prueban en orden para cada aparición; gana la primera que da un importe.
type Anchor struct {
	Name   string
	Phrase string // fragmento regex, sin flags
	Rules  []Adjacency
	Bucket Bucket
}

// Concept fila del resumen. Si Rate no es cero, el importe es la base neta
// implícita (Bucket / Rate); si es cero, el importe es el Bucket tal cual.
type Concept struct {
	Label  string
	Bucket Bucket
	Rate   decimal.Decimal
}

var (
	rate21  = decimal.RequireFromString("0.21")
	rate105 = decimal.RequireFromString("0.105")
)

// defaultRules: primero el importe pegado a la frase, si no hay, el marcado con "-" final.
var defaultRules = []Adjacency{AmountAfter, AmountBeforeMinus}

// Anchors catálogo de frases. La línea "-IVA 21,00%" (reversión) suma al
// mismo acumulador que el IVA 21% sobre arancel y no tiene fila propia.
var Anchors = []Anchor{
	{Name: "iva21_arancel", Phrase: `IVA\s*S/ARANCEL\s*DE\s*DESCUENTO\s*21,00%`, Rules: defaultRules, Bucket: BucketIVA21},
	{Name: "iva21_reversion", Phrase: `-\s*IVA\s*21,00%`, Rules: defaultRules, Bucket: BucketIVA21},
	{Name: "iva105_costo_financiero", Phrase: `IVA\s*S/COSTO\s*FINANCIERO\s*10,50%`, Rules: defaultRules, Bucket: BucketIVA105},
	{Name: "percepcion_iva_rg333", Phrase: `PERCEPCION\s*DE\s*IVA\s*RG\s*333`, Rules: defaultRules, Bucket: BucketPercepcionRG333},
	{Name: "retencion_iibb", Phrase: `RETENCION\s*DE\s*INGRESOS\s*BR`, Rules: defaultRules, Bucket: BucketRetencionIIBB},
}

// Etiquetas de las filas del resumen.
const (
	LabelBaseArancel21      = "Base Neto Arancel (21%)"
	LabelIVA21Arancel       = "IVA 21% sobre Arancel (incluye -IVA)"
	LabelBaseCostoFinanc105 = "Base Neto Costo Financiero (10,5%)"
	LabelIVA105CostoFinanc  = "IVA 10,5% sobre Costo Financiero"
	LabelPercepcionRG333    = "Percepciones IVA RG 333"
	LabelRetencionIIBB      = "Retenciones de Ingresos Brutos"
)

// Concepts catálogo ordenado; su orden es el orden de salida.
var Concepts = []Concept{
	{Label: LabelBaseArancel21, Bucket: BucketIVA21, Rate: rate21},
	{Label: LabelIVA21Arancel, Bucket: BucketIVA21},
	{Label: LabelBaseCostoFinanc105, Bucket: BucketIVA105, Rate: rate105},
	{Label: LabelIVA105CostoFinanc, Bucket: BucketIVA105},
	{Label: LabelPercepcionRG333, Bucket: BucketPercepcionRG333},
	{Label: LabelRetencionIIBB, Bucket: BucketRetencionIIBB},
}

// PhrasePattern compila la frase del ancla, sin distinguir mayúsculas.
func (a Anchor) PhrasePattern() *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + a.Phrase)
}
