package main

import (
	"fmt"
	"net/http"

	"github.com/workpay/workpay-backend-go/internal/config"
	"github.com/workpay/workpay-backend-go/internal/domain/payroll"
	appHTTP "github.com/workpay/workpay-backend-go/internal/handler/http"
	"github.com/workpay/workpay-backend-go/internal/pkg/database"
	"github.com/workpay/workpay-backend-go/internal/pkg/jwt"
	"github.com/workpay/workpay-backend-go/internal/repository/postgresql"
	accountingService "github.com/workpay/workpay-backend-go/internal/service/accounting"
	attendanceService "github.com/workpay/workpay-backend-go/internal/service/attendance"
	payrollService "github.com/workpay/workpay-backend-go/internal/service/payroll"
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
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	accountingRepo := postgresql.NewAccountingRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	rates := payroll.RatesForPreset(cfg.Payroll.RatePreset)

	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, rates)
	accountingSvc := accountingService.NewAccountingService(db, accountingRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, cfg.App.Env)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	accountingHandler := appHTTP.NewAccountingHandler(accountingSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		payrollHandler,
		accountingHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
