package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/shopstaff/staffpay-backend-go/internal/config"
	appHTTP "github.com/shopstaff/staffpay-backend-go/internal/handler/http"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/cron"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/database"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/jwt"
	"github.com/shopstaff/staffpay-backend-go/internal/repository/postgresql"
	advanceService "github.com/shopstaff/staffpay-backend-go/internal/service/advance"
	attendanceService "github.com/shopstaff/staffpay-backend-go/internal/service/attendance"
	authService "github.com/shopstaff/staffpay-backend-go/internal/service/auth"
	dashboardService "github.com/shopstaff/staffpay-backend-go/internal/service/dashboard"
	"github.com/shopstaff/staffpay-backend-go/internal/service/master"
	payrollService "github.com/shopstaff/staffpay-backend-go/internal/service/payroll"
	staffService "github.com/shopstaff/staffpay-backend-go/internal/service/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffpay"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	staffRepo := postgresql.NewStaffRepository(db)
	oldStaffRepo := postgresql.NewOldStaffRepository(db)
	fullTimeRepo := postgresql.NewFullTimeAttendanceRepository(db)
	partTimeRepo := postgresql.NewPartTimeAttendanceRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	categoryRepo := postgresql.NewSalaryCategoryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	calcCfg := payrollService.DefaultCalculatorConfig()
	calcCfg.WorkingDayBaseline = cfg.Payroll.WorkingDayBaseline
	calcCfg.SundayPenalty = cfg.Payroll.SundayPenalty
	calcCfg.ProRateHRA = cfg.Payroll.ProRateHRA
	calc := payrollService.NewCalculator(calcCfg)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	staffSvc := staffService.NewStaffService(staffRepo, oldStaffRepo, advanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(staffRepo, fullTimeRepo, partTimeRepo, calc.Rates())
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, staffRepo, logger)
	payrollSvc := payrollService.NewPayrollService(calc, staffRepo, fullTimeRepo, partTimeRepo, advanceRepo)
	dashboardSvc := dashboardService.NewDashboardService(staffRepo, fullTimeRepo, partTimeRepo, logger)
	locationSvc := master.NewLocationService(locationRepo)
	categorySvc := master.NewSalaryCategoryService(categoryRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	masterHandler := appHTTP.NewMasterHandler(locationSvc, categorySvc)

	// Opens the advance ledger for the current month so every active
	// full-timer carries last month's closing balance forward. Idempotent,
	// so running hourly only ever creates lines right after a month rolls
	// over (or for staff added since).
	scheduler := cron.NewScheduler()
	scheduler.AddJob("advance-month-open", time.Hour, func(ctx context.Context) error {
		now := time.Now()
		_, err := advanceSvc.EnsureMonthOpened(ctx, now.Year(), int(now.Month())-1)
		return err
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		logger,
		jwtService,
		authHandler,
		staffHandler,
		attendanceHandler,
		advanceHandler,
		payrollHandler,
		dashboardHandler,
		masterHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
