package main

import (
	"fmt"
	"net/http"

	"github.com/paywise-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/paywise-hr/payroll-backend-go/internal/handler/http"
	"github.com/paywise-hr/payroll-backend-go/internal/pkg/cron"
	"github.com/paywise-hr/payroll-backend-go/internal/pkg/database"
	"github.com/paywise-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/paywise-hr/payroll-backend-go/internal/repository/postgresql"
	compensationService "github.com/paywise-hr/payroll-backend-go/internal/service/compensation"
	employeeService "github.com/paywise-hr/payroll-backend-go/internal/service/employee"
	payrollService "github.com/paywise-hr/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	compensationRepo := postgresql.NewCompensationRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, compensationRepo, leaveRequestRepo, attendanceRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, compensationRepo)
	compensationSvc := compensationService.NewCompensationService(compensationRepo, employeeRepo)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, compensationSvc)

	router := appHTTP.NewRouter(JWTService, payrollHandler, employeeHandler)

	scheduler := cron.NewScheduler()
	cron.NewPayrollJobs(payrollSvc, employeeRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
