package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"valilik-yonetim/internal/entities"
	"valilik-yonetim/internal/services"
	"valilik-yonetim/pkg/utils"
)

var raporBasliklari = []string{
	"ID", "Ad Soyad", "Kurum", "Unvan", "Telefon", "Amaç",
	"Tarih", "Saat", "Durum", "Talep Kaynağı", "Havale Birimi",
	"Yönlendirilen Birim", "Sonuç Notları",
}

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetRandevuReport, filtreye uyan randevu listesini döner; format=xlsx
// istendiğinde aynı veri Excel dosyası olarak indirilir.
func (c *ReportController) GetRandevuReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	format := strings.ToLower(ctx.QueryParam("format"))

	randevular, total, err := c.reportService.GetRandevuReport(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, randevular)
	}

	return utils.SuccessResponse(ctx, randevular, "Randevu raporu oluşturuldu", http.StatusOK, total)
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, randevular []entities.Randevu) error {
	f := excelize.NewFile()
	sheet := "Randevu Raporu"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &raporBasliklari)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "M1", style)

	for i, r := range randevular {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			r.ID, r.AdSoyad, r.Kurum, r.Unvan, r.Telefon, r.Amac,
			r.Tarih, r.Saat, r.Durum, r.TalepKaynagi, r.HavaleBirimi,
			r.YonlendirilenBirim, r.SonucNotlari,
		}
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 25)
	f.SetColWidth(sheet, "C", "F", 20)
	f.SetColWidth(sheet, "I", "L", 22)
	f.SetColWidth(sheet, "M", "M", 40)

	fileName := fmt.Sprintf("randevu_raporu_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
