package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Steven1400999/inventario-api/internal/application/usecase"
	"github.com/Steven1400999/inventario-api/internal/domain/entity"
)

var _ usecase.HistorialExporter = (*HistorialExporter)(nil)

// HistorialExporter genera el historial de movimientos como libro XLSX.
type HistorialExporter struct{}

// NewHistorialExporter construye el exportador.
func NewHistorialExporter() *HistorialExporter {
	return &HistorialExporter{}
}

// Export escribe una hoja "Historial" con una fila por movimiento.
func (e *HistorialExporter) Export(items []*entity.HistorialInventario) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Historial"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("eliminar hoja por defecto: %w", err)
	}

	headers := []string{"ID", "Artículo", "Tipo de movimiento", "Cantidad", "Fecha"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("escribir encabezado: %w", err)
		}
	}

	for row, item := range items {
		values := []any{
			item.ID,
			item.ArticuloID,
			item.TipoMovimientoID,
			item.Cantidad,
			item.FechaMovimiento.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("escribir fila %d: %w", row+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar XLSX: %w", err)
	}
	return buf.Bytes(), nil
}
