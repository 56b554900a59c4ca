// controllers/backup.go
package controllers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"solarops-backend/config"
	"solarops-backend/models"
	"solarops-backend/services"
	"solarops-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BackupSnapshot is the full-database JSON payload produced by the
// export endpoint and accepted by restore.
type BackupSnapshot struct {
	ExportedAt    time.Time               `json:"exportedAt"`
	Schedulings   []models.Scheduling     `json:"schedulings"`
	Inverters     []models.InverterConfig `json:"inverters"`
	Installations []models.Installation   `json:"installations"`
	Clients       []models.Client         `json:"clients"`
	Refunds       []models.Refund         `json:"refunds"`
	Reminders     []models.Reminder       `json:"reminders"`
	Tasks         []models.Task           `json:"tasks"`
	Settings      []models.AppSetting     `json:"settings"`
}

var exportHeaders = []string{
	"Ordem", "Cliente", "Telefone", "Servico", "Local", "Data",
	"Hora", "Valor", "Status", "Equipe", "Vendedor", "Observacao",
}

// ExportBackup dumps every business table as one JSON document
func ExportBackup(c *gin.Context) {
	snapshot := BackupSnapshot{ExportedAt: time.Now()}

	queries := []struct {
		dest  interface{}
		order string
	}{
		{&snapshot.Schedulings, "order_number"},
		{&snapshot.Inverters, "order_number"},
		{&snapshot.Installations, "order_number"},
		{&snapshot.Clients, "name"},
		{&snapshot.Refunds, "date"},
		{&snapshot.Reminders, "created_at"},
		{&snapshot.Tasks, "created_at"},
		{&snapshot.Settings, "key"},
	}
	for _, q := range queries {
		if err := config.DB.Order(q.order).Find(q.dest).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export backup")
			return
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="backup-%s.json"`, utils.Today()))
	c.JSON(http.StatusOK, snapshot)
}

// RestoreBackup replaces the entire database contents with a snapshot.
// All tables are wiped and reloaded inside one transaction, so a bad
// payload leaves the database untouched.
func RestoreBackup(c *gin.Context) {
	var snapshot BackupSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid backup payload: "+err.Error())
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.Scheduling{}, &models.InverterConfig{}, &models.Installation{},
			&models.Refund{}, &models.Reminder{}, &models.Task{},
			&models.AppSetting{}, &models.Client{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		if len(snapshot.Clients) > 0 {
			if err := tx.Create(&snapshot.Clients).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Schedulings) > 0 {
			if err := tx.Create(&snapshot.Schedulings).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Inverters) > 0 {
			if err := tx.Create(&snapshot.Inverters).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Installations) > 0 {
			if err := tx.Create(&snapshot.Installations).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Refunds) > 0 {
			if err := tx.Create(&snapshot.Refunds).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Reminders) > 0 {
			if err := tx.Create(&snapshot.Reminders).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Tasks) > 0 {
			if err := tx.Create(&snapshot.Tasks).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Settings) > 0 {
			if err := tx.Create(&snapshot.Settings).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to restore backup")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Backup restored successfully"})
}

// ImportSchedulingsCSV bulk-loads schedulings from a raw CSV body.
// Rows missing an order number get sequential ones, and every imported
// client is captured into the client registry.
func ImportSchedulingsCSV(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	rows, err := utils.ParseSchedulingCSV(string(body))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Could not parse CSV: "+err.Error())
		return
	}

	imported := 0
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var existing []string
		if err := tx.Model(&models.Scheduling{}).Pluck("order_number", &existing).Error; err != nil {
			return err
		}

		for _, row := range rows {
			orderNumber := row.OrderNumber
			if orderNumber == "" {
				orderNumber = utils.NextOrderNumber(existing)
			}
			existing = append(existing, orderNumber)

			scheduling := models.Scheduling{
				RegistrationDate: time.Now(),
				OrderNumber:      orderNumber,
				Client:           row.Client,
				Phone:            row.Phone,
				Service:          row.Service,
				Location:         row.Location,
				ScheduledDate:    row.ScheduledDate,
				ScheduledTime:    row.ScheduledTime,
				Value:            row.Value,
				Team:             row.Team,
				Salesperson:      row.Salesperson,
				Observation:      row.Observation,
			}
			scheduling.Status = row.Status
			scheduling.Priority = models.PriorityMedium
			if scheduling.Status == models.StatusResolved {
				scheduling.CompletionDate = utils.Today()
			}

			clientID, err := services.CaptureClient(tx, row.Client, row.Phone, row.Location, row.Salesperson)
			if err != nil {
				return err
			}
			scheduling.ClientID = clientID

			if err := tx.Create(&scheduling).Error; err != nil {
				return err
			}
			imported++
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to import schedulings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

func schedulingExportRows(schedulings []models.Scheduling) [][]string {
	rows := make([][]string, 0, len(schedulings))
	for _, s := range schedulings {
		rows = append(rows, []string{
			s.OrderNumber, s.Client, s.Phone, s.Service, s.Location, s.ScheduledDate,
			s.ScheduledTime, fmt.Sprintf("%.2f", s.Value), s.Status, s.Team,
			s.Salesperson, s.Observation,
		})
	}
	return rows
}

// displayDate converts YYYY-MM-DD to DD/MM/YYYY for printed reports
func displayDate(iso string) string {
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return iso
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// ExportSchedulingsCSV downloads all schedulings as a semicolon CSV
func ExportSchedulingsCSV(c *gin.Context) {
	var schedulings []models.Scheduling
	if err := config.DB.Order("order_number").Find(&schedulings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export schedulings")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="agendamentos-%s.csv"`, utils.Today()))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := utils.WriteCSV(c.Writer, exportHeaders, schedulingExportRows(schedulings)); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export schedulings")
	}
}

// ExportSchedulingsExcel downloads all schedulings as an xlsx workbook
func ExportSchedulingsExcel(c *gin.Context) {
	var schedulings []models.Scheduling
	if err := config.DB.Order("order_number").Find(&schedulings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export schedulings")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="agendamentos-%s.xlsx"`, utils.Today()))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := utils.WriteExcel(c.Writer, "Agendamentos", exportHeaders, schedulingExportRows(schedulings)); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export schedulings")
	}
}

// ExportSchedulingsPDF downloads a condensed scheduling report as PDF
func ExportSchedulingsPDF(c *gin.Context) {
	var schedulings []models.Scheduling
	if err := config.DB.Order("order_number").Find(&schedulings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export schedulings")
		return
	}

	headers := []string{"Ordem", "Cliente", "Serviço", "Data", "Status", "Valor"}
	rows := make([][]string, 0, len(schedulings))
	for _, s := range schedulings {
		rows = append(rows, []string{
			s.OrderNumber, s.Client, s.Service, displayDate(s.ScheduledDate),
			s.Status, fmt.Sprintf("R$ %.2f", s.Value),
		})
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="agendamentos-%s.pdf"`, utils.Today()))
	c.Header("Content-Type", "application/pdf")
	if err := utils.WritePDF(c.Writer, "Relatório de Agendamentos", headers, rows); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export schedulings")
	}
}
