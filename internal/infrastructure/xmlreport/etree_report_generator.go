// Package xmlreport exporta el resumen como XML para importarlo en sistemas contables.
//
//	<ResumenImportes id="…" generado="16/10/2026 10:45">
//	  <Titulo>…</Titulo>
//	  <Concepto orden="1" importe="5238.10">
//	    <Descripcion>Base Neto Arancel (21%)</Descripcion>
//	    <Monto>5.238,10</Monto>
//	  </Concepto>
//	  …
//	</ResumenImportes>
package xmlreport

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	appreport "github.com/jhoicas/control-tarjeta/internal/application/report"
	"github.com/jhoicas/control-tarjeta/internal/domain/entity"
	"github.com/jhoicas/control-tarjeta/pkg/money"
)

var _ appreport.Renderer = (*EtreeReportGenerator)(nil)

// EtreeReportGenerator implementa report.Renderer con beevik/etree.
type EtreeReportGenerator struct{}

// NewEtreeReportGenerator construye el generador.
func NewEtreeReportGenerator() *EtreeReportGenerator { return &EtreeReportGenerator{} }

// Render arma el documento XML. El atributo importe usa punto decimal; Monto el formato del informe.
func (g *EtreeReportGenerator) Render(_ context.Context, r entity.Report) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ResumenImportes")
	if r.ID != "" {
		root.CreateAttr("id", r.ID)
	}
	root.CreateAttr("generado", r.GeneratedAtText())
	root.CreateElement("Titulo").SetText(r.Title)

	if r.Summary != nil {
		for i, row := range r.Summary.Rows {
			c := root.CreateElement("Concepto")
			c.CreateAttr("orden", strconv.Itoa(i+1))
			c.CreateAttr("importe", row.Amount.StringFixed(2))
			c.CreateElement("Descripcion").SetText(row.Concept)
			c.CreateElement("Monto").SetText(money.Format(row.Amount))
		}
	}
	if r.Footer != "" {
		root.CreateElement("Pie").SetText(r.Footer)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar: %w", err)
	}
	return out, nil
}
