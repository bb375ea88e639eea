package service

import (
	"context"
	"fmt"

	"github.com/nani-1205/Project-Management-App/internal/repository"
	"github.com/xuri/excelize/v2"
)

// ReportService builds downloadable time reports.
type ReportService struct {
	projectRepo *repository.ProjectRepository
	taskRepo    *repository.TaskRepository
	timeLogRepo *repository.TimeLogRepository
}

func NewReportService(projectRepo *repository.ProjectRepository, taskRepo *repository.TaskRepository, timeLogRepo *repository.TimeLogRepository) *ReportService {
	return &ReportService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		timeLogRepo: timeLogRepo,
	}
}

const (
	reportSheetTasks = "Tasks"
	reportSheetLogs  = "Time Logs"
)

// BuildTimeReport renders a project's tasks and time logs as an xlsx
// workbook. The caller owns closing the returned file.
func (s *ReportService) BuildTimeReport(ctx context.Context, projectID string) (*excelize.File, string, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, "", err
	}
	tasks, err := s.taskRepo.ListForProject(ctx, projectID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), reportSheetTasks)
	if _, err := f.NewSheet(reportSheetLogs); err != nil {
		f.Close()
		return nil, "", err
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, "", err
	}

	taskHeaders := []any{"Task", "Status", "Priority", "Due Date", "Estimated Hours", "Logged Minutes"}
	if err := f.SetSheetRow(reportSheetTasks, "A1", &taskHeaders); err != nil {
		f.Close()
		return nil, "", err
	}
	f.SetRowStyle(reportSheetTasks, 1, 1, header)
	f.SetColWidth(reportSheetTasks, "A", "A", 40)
	f.SetColWidth(reportSheetTasks, "B", "F", 16)

	for i, task := range tasks {
		dueDate := ""
		if task.DueDate != nil {
			dueDate = task.DueDate.Format("2006-01-02")
		}
		var estimated any
		if task.EstimatedHours != nil {
			estimated = *task.EstimatedHours
		}
		row := []any{task.Name, task.Status, task.Priority, dueDate, estimated, task.TotalLoggedMinutes}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(reportSheetTasks, cell, &row); err != nil {
			f.Close()
			return nil, "", err
		}
	}

	logHeaders := []any{"Task", "Log Date", "Duration (minutes)", "Notes"}
	if err := f.SetSheetRow(reportSheetLogs, "A1", &logHeaders); err != nil {
		f.Close()
		return nil, "", err
	}
	f.SetRowStyle(reportSheetLogs, 1, 1, header)
	f.SetColWidth(reportSheetLogs, "A", "A", 40)
	f.SetColWidth(reportSheetLogs, "B", "C", 18)
	f.SetColWidth(reportSheetLogs, "D", "D", 50)

	logRow := 2
	for _, task := range tasks {
		logs, err := s.timeLogRepo.ListForTask(ctx, task.ID)
		if err != nil {
			f.Close()
			return nil, "", err
		}
		for _, timeLog := range logs {
			row := []any{task.Name, timeLog.LogDate.Format("2006-01-02"), timeLog.DurationMinutes, timeLog.Notes}
			cell, _ := excelize.CoordinatesToCellName(1, logRow)
			if err := f.SetSheetRow(reportSheetLogs, cell, &row); err != nil {
				f.Close()
				return nil, "", err
			}
			logRow++
		}
	}

	filename := fmt.Sprintf("%s-time-report.xlsx", sanitizeFilename(project.Name))
	return f, filename, nil
}

func sanitizeFilename(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r == ' ':
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "project"
	}
	return string(out)
}
