package service

import (
	"context"
	"fairhold/internal/calculator"
	"fairhold/internal/domain"
	"fairhold/internal/report"
	"fairhold/internal/repository"
	"fairhold/internal/util"
	"fairhold/pkg/cdp"
	"fairhold/pkg/supabase"
	"fmt"
	"net/url"
	"strings"
)

//go:generate mockgen -source=check.service.go -destination=mocks/mock_check.service.go

// Check is one connectivity or sanity check in the suite. Run never
// returns an error; failures are recorded on the result.
type Check interface {
	ID() string
	Name() string
	Critical() bool
	Run(ctx context.Context) domain.CheckResult
}

const defaultNetwork = "base-sepolia"

func newCheckResult(c Check) domain.CheckResult {
	return domain.CheckResult{
		Name:     c.Name(),
		Critical: c.Critical(),
		Status:   domain.CheckStatusPass,
		Steps:    []domain.CheckStep{},
	}
}

// redact hides secrets. Keys keep their length so a truncated paste is
// still visible in the output.
func redact(name, value string) string {
	switch {
	case name == "CDP_PRIVATE_KEY" || strings.Contains(name, "SECRET"):
		return "[REDACTED]"
	case strings.Contains(name, "KEY") && name != "CDP_API_KEY_NAME":
		return fmt.Sprintf("[REDACTED - %d characters]", len(value))
	case name == "DATABASE_URL":
		u, err := url.Parse(value)
		if err != nil || u.Scheme == "" {
			return "[REDACTED]"
		}
		return u.Redacted()
	}
	return value
}

// checkEnvironment records one step per variable and reports whether all
// of them are usable
func checkEnvironment(result *domain.CheckResult, cfg util.Config, names []string, rejectPlaceholders bool) bool {
	allPresent := true
	for _, name := range names {
		value := cfg.Get(name)
		switch {
		case value == "":
			result.AddStep(name, false, "Missing!")
			allPresent = false
		case rejectPlaceholders && util.IsPlaceholder(value):
			result.AddStep(name, false, "Missing or placeholder value!")
			allPresent = false
		default:
			result.AddStep(name, true, redact(name, value))
		}
	}
	return allPresent
}

func MissingVariables(cfg util.Config, names []string) []string {
	missing := []string{}
	for _, name := range names {
		if cfg.Get(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

var (
	CdpVariables        = []string{"CDP_API_KEY_NAME", "CDP_PRIVATE_KEY", "CDP_PROJECT_ID"}
	DatabaseVariables   = []string{"DATABASE_URL", "SUPABASE_URL", "SUPABASE_ANON_KEY", "SUPABASE_SERVICE_KEY"}
	CloudinaryVariables = []string{"CLOUDINARY_CLOUD_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET", "CLOUDINARY_UPLOAD_PRESET"}
)

type cdpCheck struct {
	Cfg              util.Config
	NewCdpRepository func(util.CdpSecrets) (repository.CdpRepository, error)
}

func NewCdpCheck(cfg util.Config, newCdpRepository func(util.CdpSecrets) (repository.CdpRepository, error)) Check {
	return cdpCheck{
		Cfg:              cfg,
		NewCdpRepository: newCdpRepository,
	}
}

func (c cdpCheck) ID() string     { return "cdp" }
func (c cdpCheck) Name() string   { return "Coinbase CDP" }
func (c cdpCheck) Critical() bool { return true }

func (c cdpCheck) Run(ctx context.Context) domain.CheckResult {
	result := newCheckResult(c)

	if !checkEnvironment(&result, c.Cfg, CdpVariables, false) {
		result.Fail(fmt.Errorf("some environment variables are missing; check your .env.local file"))
		return result
	}

	privateKey := c.Cfg.Cdp.PrivateKey
	result.AddStep("Private key present", true, fmt.Sprintf("length: %d characters", len(privateKey)))
	result.AddStep("Private key format", true, cdp.KeyFormat(privateKey)+" format")

	repo, err := c.NewCdpRepository(c.Cfg.Cdp)
	if err != nil {
		result.AddStep("CDP configuration", false, "")
		result.Fail(err)
		return result
	}
	result.AddStep("CDP configuration", true, "signing requests with "+repo.SigningAlgorithm())

	network := c.Cfg.Network
	if network == "" {
		network = defaultNetwork
	}
	if c.Cfg.Cdp.ConnectivityProbe {
		n, err := repo.GetNetwork(ctx, network)
		if err != nil {
			result.AddStep("API connectivity", false, "")
			result.Fail(fmt.Errorf("failed to fetch network %s: %w", network, err))
			return result
		}
		result.AddStep("API connectivity", true, fmt.Sprintf("%s (chain %d)", n.DisplayName, n.ChainID))
	} else {
		result.AddInfo("API connectivity", "probe disabled; credentials parsed and signing works")
	}

	principal, days := 1000.0, 30
	y, err := calculator.SimpleYield(principal, util.DefaultAnnualYieldRate, days)
	if err != nil {
		result.AddStep("Yield simulation", false, "")
		result.Fail(err)
		return result
	}
	result.AddStep("Yield simulation", true, fmt.Sprintf(
		"%s over %d days: %s (%s return)",
		report.WholeCurrency(principal),
		days,
		report.Currency(y.YieldAmount),
		report.Percent(y.YieldFraction, 3),
	))

	return result
}

type databaseCheck struct {
	Cfg                   util.Config
	NewDatabaseRepository func(connStr string) (repository.DatabaseRepository, error)
	NewSupabaseRepository func(util.SupabaseSecrets) repository.SupabaseRepository
}

func NewDatabaseCheck(
	cfg util.Config,
	newDatabaseRepository func(connStr string) (repository.DatabaseRepository, error),
	newSupabaseRepository func(util.SupabaseSecrets) repository.SupabaseRepository,
) Check {
	return databaseCheck{
		Cfg:                   cfg,
		NewDatabaseRepository: newDatabaseRepository,
		NewSupabaseRepository: newSupabaseRepository,
	}
}

func (c databaseCheck) ID() string     { return "database" }
func (c databaseCheck) Name() string   { return "Database (Supabase)" }
func (c databaseCheck) Critical() bool { return true }

func (c databaseCheck) Run(ctx context.Context) domain.CheckResult {
	result := newCheckResult(c)

	if !checkEnvironment(&result, c.Cfg, DatabaseVariables, false) {
		result.Fail(fmt.Errorf("some Supabase environment variables are missing"))
		return result
	}

	anonKey := c.Cfg.Supabase.AnonKey
	if supabase.IsPublishableKey(anonKey) {
		result.AddStep("Anon key", true, "publishable key")
	} else {
		claims, err := supabase.DecodeApiKey(anonKey)
		if err != nil {
			result.AddStep("Anon key", false, "")
			result.Fail(err)
			return result
		}
		if claims.Role != "anon" {
			result.AddStep("Anon key", false, "role "+claims.Role)
			result.Fail(fmt.Errorf("SUPABASE_ANON_KEY has role %q, expected anon", claims.Role))
			return result
		}
		result.AddStep("Anon key", true, "role anon, project "+claims.Ref)
	}

	restStatus, err := c.NewSupabaseRepository(c.Cfg.Supabase).ProbeUsers(ctx)
	if err != nil {
		result.AddStep("Supabase connection", false, "")
		result.Fail(err)
		return result
	}
	result.AddStep("Supabase connection", true, "")

	db, err := c.NewDatabaseRepository(c.Cfg.Database.Url)
	if err != nil {
		result.AddStep("Postgres connection", false, "")
		result.Fail(err)
		return result
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		result.AddStep("Postgres connection", false, "")
		result.Fail(err)
		return result
	}
	pgStatus, err := db.ProbeUsers(ctx)
	if err != nil {
		result.AddStep("Postgres connection", false, "")
		result.Fail(err)
		return result
	}
	result.AddStep("Postgres connection", true, "")

	if restStatus == domain.SchemaMissing || pgStatus == domain.SchemaMissing {
		result.AddInfo("Database schema", "not yet created - run the SQL from the setup guide")
	} else {
		result.AddStep("Database schema", true, "appears to be set up")
	}

	return result
}

type fileStorageCheck struct {
	Cfg                      util.Config
	NewFileStorageRepository func(util.CloudinarySecrets) repository.FileStorageRepository
}

func NewFileStorageCheck(cfg util.Config, newFileStorageRepository func(util.CloudinarySecrets) repository.FileStorageRepository) Check {
	return fileStorageCheck{
		Cfg:                      cfg,
		NewFileStorageRepository: newFileStorageRepository,
	}
}

func (c fileStorageCheck) ID() string     { return "storage" }
func (c fileStorageCheck) Name() string   { return "File Storage (Cloudinary)" }
func (c fileStorageCheck) Critical() bool { return false }

func (c fileStorageCheck) Run(ctx context.Context) domain.CheckResult {
	result := newCheckResult(c)

	if !checkEnvironment(&result, c.Cfg, CloudinaryVariables, true) {
		result.Fail(fmt.Errorf("cloudinary not configured yet"))
		return result
	}

	status, err := c.NewFileStorageRepository(c.Cfg.Cloudinary).Ping(ctx)
	if err != nil {
		result.AddStep("Cloudinary connection", false, "")
		result.Fail(err)
		return result
	}
	result.AddStep("Cloudinary connection", true, "cloud status: "+status)

	return result
}

type yieldCheck struct {
	Cfg                    util.Config
	YieldSimulationService YieldSimulationService
}

func NewYieldCheck(cfg util.Config, yieldSimulationService YieldSimulationService) Check {
	return yieldCheck{
		Cfg:                    cfg,
		YieldSimulationService: yieldSimulationService,
	}
}

func (c yieldCheck) ID() string     { return "yield" }
func (c yieldCheck) Name() string   { return "Yield Simulation" }
func (c yieldCheck) Critical() bool { return true }

func (c yieldCheck) Run(ctx context.Context) domain.CheckResult {
	result := newCheckResult(c)

	rate := c.Cfg.Yield.AnnualRate
	result.AddStep("Annual rate", true, report.Percent(rate, 1))
	if calculator.IsUnusualRate(rate) {
		result.AddInfo("Annual rate", "outside [0, 1]; ANNUAL_YIELD_RATE should be a fraction")
	}

	sim, err := c.YieldSimulationService.SimulateDefaults(rate)
	if err != nil {
		result.Fail(err)
		return result
	}

	for _, s := range sim.Scenarios {
		result.AddStep(s.Scenario.Description, true, fmt.Sprintf(
			"%s over %d days yields %s (%s)",
			report.WholeCurrency(s.Scenario.Principal),
			s.Scenario.Days,
			report.Currency(s.Result.YieldAmount),
			report.Percent(s.Result.YieldFraction, 3),
		))
	}
	result.AddStep("Compound simulation", true, fmt.Sprintf(
		"%s over %d days: %s, effective annual yield %s",
		report.WholeCurrency(sim.Compound.Request.Principal),
		sim.Compound.Request.TotalDays,
		report.Currency(sim.Compound.Result.YieldAmount),
		report.Percent(sim.Compound.EffectiveAnnualYield, 2),
	))

	return result
}

// DefaultChecks wires the real repositories, in the order the suite runs them
func DefaultChecks(cfg util.Config) []Check {
	return []Check{
		NewCdpCheck(cfg, repository.NewCdpRepository),
		NewDatabaseCheck(cfg, repository.NewDatabaseRepository, repository.NewSupabaseRepository),
		NewFileStorageCheck(cfg, repository.NewFileStorageRepository),
		NewYieldCheck(cfg, NewYieldSimulationService()),
	}
}
