package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/larissavarjao/lvstore-api/apperrors"
	"github.com/larissavarjao/lvstore-api/models"
)

// GET /orders/export — ADMIN only; downloads all orders as a spreadsheet,
// one row per order line.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := loadCaller(db, c)
		if !ok {
			return
		}
		if !caller.HasAnyPermission(models.PermissionAdmin) {
			fail(c, apperrors.ErrForbidden)
			return
		}

		var orders []models.Order
		if err := db.Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sheet"})
			return
		}

		headers := []string{
			"OrderID", "UserID", "Charge", "Total", "Title", "Price", "Quantity", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			for _, line := range o.Items {
				row := sheet.AddRow()
				row.AddCell().SetValue(o.ID)
				row.AddCell().SetValue(o.UserID)
				row.AddCell().SetValue(o.Charge)
				row.AddCell().SetValue(o.Total)
				row.AddCell().SetValue(line.Title)
				row.AddCell().SetValue(line.Price)
				row.AddCell().SetValue(line.Quantity)
				row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write spreadsheet"})
			return
		}
	}
}
