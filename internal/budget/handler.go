package budget

import (
	"fmt"
	"log"
	"time"

	"butce-backend/internal/auth"
	"butce-backend/internal/command"
	"butce-backend/internal/database"
	"butce-backend/internal/dataset"
	"butce-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// -----------------------------------
// GET /api/employees
// ?manager=Mehmet%20Demir (opsiyonel filtre)
// -----------------------------------
func ListEmployeesHandler(st *ledger.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st.Lock()
		defer st.Unlock()

		manager := c.Query("manager")
		rows := st.Data.Rows
		if manager != "" {
			rows = st.Data.FilterByManager(manager)
		}
		return c.JSON(fiber.Map{
			"rows":     rows,
			"managers": st.Data.Managers(),
		})
	}
}

// -----------------------------------
// GET /api/employees/summary
// ?manager= filtresiyle KPI toplamları
// -----------------------------------
func SummaryHandler(st *ledger.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st.Lock()
		defer st.Unlock()
		return c.JSON(st.Data.Summarize(c.Query("manager")))
	}
}

type selectRequest struct {
	PersonRef *int `json:"person_ref"`
}

// -----------------------------------
// POST /api/employees/select
// Tablo seçimi; null göndermek seçimi temizler
// -----------------------------------
func SelectHandler(st *ledger.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req selectRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		st.Lock()
		defer st.Unlock()

		if req.PersonRef == nil {
			st.SelectedRef = nil
			return c.JSON(fiber.Map{"selected": nil})
		}
		row, ok := st.Data.FindByRef(*req.PersonRef)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Girilen PersonRef ile eşleşen kişi bulunamadı")
		}
		st.SelectedRef = req.PersonRef
		return c.JSON(fiber.Map{"selected": row})
	}
}

type operationRequest struct {
	PersonRef string  `json:"person_ref"`
	Amount    float64 `json:"amount"`
	Operation string  `json:"operation"`
}

// -----------------------------------
// POST /api/operations
// "İşlem Yap" akışı: UI girdileri + son sesli komut birleşir
// -----------------------------------
func OperationHandler(st *ledger.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req operationRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		st.Lock()
		defer st.Unlock()

		res := command.Click(st, req.PersonRef, req.Amount, ledger.Operation(req.Operation))
		return c.JSON(res)
	}
}

// -----------------------------------
// POST /api/save
// Bekleyen işlemleri Excel'e ve veritabanına kalıcılaştırır
// -----------------------------------
func SaveHandler(st *ledger.State, excelPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName := auth.UserInfo(c)

		st.Lock()
		defer st.Unlock()

		if len(st.UnsavedOps) == 0 {
			return c.JSON(fiber.Map{"saved": 0, "message": "Kaydedilecek işlem yok."})
		}
		count, err := ledger.Commit(st, excelPath, database.DB, userID, userName)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel kaydedilemedi: "+err.Error())
		}
		return c.JSON(fiber.Map{
			"saved":   count,
			"message": fmt.Sprintf("%d işlem kaydedildi ve geçmişe eklendi.", count),
		})
	}
}

// -----------------------------------
// GET /api/unsaved-count
// -----------------------------------
func UnsavedCountHandler(st *ledger.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st.Lock()
		defer st.Unlock()
		return c.JSON(fiber.Map{"count": len(st.UnsavedOps)})
	}
}

// -----------------------------------
// GET /api/history
// Kaydedilmiş işlem geçmişi, en yeni en üstte
// -----------------------------------
func HistoryHandler(st *ledger.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st.Lock()
		defer st.Unlock()

		out := make([]ledger.Transaction, 0, len(st.History))
		for i := len(st.History) - 1; i >= 0; i-- {
			out = append(out, st.History[i])
		}
		return c.JSON(fiber.Map{"rows": out, "unsaved": len(st.UnsavedOps)})
	}
}

// historyFile: geçmiş kayıtlarını tek sayfalık Excel dosyasına döker.
func historyFile(rows []ledger.Transaction) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []interface{}{
		"Zaman", "PersonRef", "Ad Soyad", "Bölüm", "Yönetici Zinciri",
		"İşlem", "Havuz", "Tutar",
		"Önce Sistem Kalan", "Sonra Sistem Kalan",
		"Önce Bütçe Dışı Kalan", "Sonra Bütçe Dışı Kalan",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}
	for i, tx := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			tx.Time.Format("2006-01-02 15:04:05"), tx.PersonRef, tx.FullName,
			tx.Department, tx.ManagerChain, string(tx.Operation), tx.Pool, tx.Amount,
			tx.BeforeSystemRemaining, tx.AfterSystemRemaining,
			tx.BeforeOffBudgetRemaining, tx.AfterOffBudgetRemaining,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func sendExcel(c *fiber.Ctx, f *excelize.File, filename string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("Excel çıktısı üretilemedi: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Dosya oluşturulamadı")
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// -----------------------------------
// GET /api/history/export
// -----------------------------------
func HistoryExportHandler(st *ledger.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st.Lock()
		f, err := historyFile(st.History)
		st.Unlock()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Geçmiş dışa aktarılamadı")
		}
		name := "islem_gecmisi_" + time.Now().Format("20060102_150405") + ".xlsx"
		return sendExcel(c, f, name)
	}
}

// -----------------------------------
// GET /api/dataset/export
// ?manager= filtresiyle güncel veri setinin Excel kopyası
// -----------------------------------
func DatasetExportHandler(st *ledger.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st.Lock()
		rows := st.Data.FilterByManager(c.Query("manager"))
		f, err := dataset.BuildFile(rows)
		st.Unlock()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Veri seti dışa aktarılamadı")
		}
		name := "butce_calisma_" + time.Now().Format("20060102_150405") + ".xlsx"
		return sendExcel(c, f, name)
	}
}

type autoApplyRequest struct {
	Enabled bool `json:"enabled"`
}

// -----------------------------------
// GET/PUT /api/settings/auto-apply
// Sesli komutların tetikleyici beklemeden uygulanıp uygulanmayacağı
// -----------------------------------
func GetAutoApplyHandler(st *ledger.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st.Lock()
		defer st.Unlock()
		return c.JSON(fiber.Map{"enabled": st.AutoApply})
	}
}

func SetAutoApplyHandler(st *ledger.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req autoApplyRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		st.Lock()
		st.AutoApply = req.Enabled
		st.Unlock()
		return c.JSON(fiber.Map{"enabled": req.Enabled})
	}
}
