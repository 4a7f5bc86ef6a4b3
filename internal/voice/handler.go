package voice

import (
	"butce-backend/internal/command"
	"butce-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
)

type commandRequest struct {
	Text   string  `json:"text"`
	Amount float64 `json:"amount"`
}

// -----------------------------------
// POST /api/voice-commands
// Tanınan söylem metni burada çözülür; Amount, UI'daki tutar alanıdır
// -----------------------------------
func CommandHandler(st *ledger.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req commandRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if req.Text == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Komut metni boş olamaz")
		}

		st.Lock()
		defer st.Unlock()

		res := command.HandleUtterance(st, req.Text, req.Amount)
		return c.JSON(res)
	}
}

// -----------------------------------
// GET /api/pending-batch
// Onay bekleyen toplu işlem ve etkilenecek satırların ön izlemesi
// -----------------------------------
func PendingBatchHandler(st *ledger.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st.Lock()
		defer st.Unlock()

		if st.PendingBatch == nil {
			return c.JSON(fiber.Map{"pending": nil})
		}
		preview := st.Data.ReportsOf(st.PendingBatch.Manager)
		return c.JSON(fiber.Map{
			"pending": st.PendingBatch,
			"rows":    preview,
		})
	}
}

// -----------------------------------
// POST /api/pending-batch/confirm
// -----------------------------------
func ConfirmBatchHandler(st *ledger.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st.Lock()
		defer st.Unlock()

		if st.PendingBatch == nil {
			return fiber.NewError(fiber.StatusNotFound, "Onay bekleyen toplu işlem yok")
		}
		applied, skipped := ledger.ApplyBatch(st, st.PendingBatch)
		st.PendingBatch = nil
		return c.JSON(command.Result{
			Status:       command.StatusBatchApplied,
			Message:      "Toplu işlem uygulandı. Kaydet ile geçmişe işlenir.",
			Speech:       "Toplu işlem uygulandı. Kaydet tuşuyla geçmişe ekleyin.",
			AppliedCount: applied,
			SkippedCount: skipped,
		})
	}
}

// -----------------------------------
// POST /api/pending-batch/cancel
// -----------------------------------
func CancelBatchHandler(st *ledger.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st.Lock()
		defer st.Unlock()

		if st.PendingBatch == nil {
			return fiber.NewError(fiber.StatusNotFound, "Onay bekleyen toplu işlem yok")
		}
		st.PendingBatch = nil
		return c.JSON(command.Result{
			Status:  command.StatusBatchCancelled,
			Message: "Toplu işlem iptal edildi.",
			Speech:  "Toplu işlem iptal edildi.",
		})
	}
}
