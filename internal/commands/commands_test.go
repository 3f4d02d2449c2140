package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/ledgerlens/internal/commands"
	"github.com/ledgerlens/ledgerlens/internal/importlog"
	"github.com/ledgerlens/ledgerlens/internal/ledger"
	"github.com/ledgerlens/ledgerlens/internal/model"
)

const fixture = "../../testdata/kaspi_statement.txt"

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	color.NoColor = true
	os.Exit(m.Run())
}

func runLedgerlens(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func initWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, _, err := runLedgerlens(t, "init", dir)
	require.NoError(t, err)
	return dir
}

func copyFixture(t *testing.T, dst string) {
	t.Helper()
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dst, data, 0o644))
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := initWorkspace(t)

	for _, d := range []string{"rules", "logs", "ledgers", "import", filepath.Join("import", "processed")} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}

	data, err := os.ReadFile(filepath.Join(dir, "ledgerlens.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "format: kaspi")

	data, err = os.ReadFile(filepath.Join(dir, "rules", "categorization-rules.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "keyword: WILDBERRIES")
}

func TestInit_Toml(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runLedgerlens(t, "init", dir, "--config-format", "toml")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "ledgerlens.toml"))
}

func TestInit_Twice(t *testing.T) {
	dir := initWorkspace(t)
	_, _, err := runLedgerlens(t, "init", dir)
	assert.ErrorContains(t, err, "already initialized")
}

func TestImport_ScansImportDir(t *testing.T) {
	dir := initWorkspace(t)
	copyFixture(t, filepath.Join(dir, "import", "march.txt"))

	out, _, err := runLedgerlens(t, "import", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 6 transactions for March 2024")

	assert.NoFileExists(t, filepath.Join(dir, "import", "march.txt"))
	assert.FileExists(t, filepath.Join(dir, "import", "processed", "march.txt"))

	ledgers, err := ledger.NewStore(dir).Load()
	require.NoError(t, err)
	require.Len(t, ledgers, 1)
	assert.Equal(t, "March 2024", ledgers[0].Month)
	assert.Len(t, ledgers[0].Transactions, 6)
	assert.Equal(t, "2024-03-15", ledgers[0].Transactions[0].DateString(), "newest first")

	entries, err := importlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, importlog.ActionImported, entries[0].Action)
	assert.Equal(t, 6, entries[0].Count)
}

func TestImport_ExplicitFileStaysPut(t *testing.T) {
	dir := initWorkspace(t)
	src := filepath.Join(t.TempDir(), "statement.txt")
	copyFixture(t, src)

	out, _, err := runLedgerlens(t, "import", "--repo", dir, src)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 6 transactions for March 2024")
	assert.FileExists(t, src)
}

func TestImport_Twice_KeepsDuplicates(t *testing.T) {
	dir := initWorkspace(t)
	src := filepath.Join(t.TempDir(), "statement.txt")
	copyFixture(t, src)

	_, _, err := runLedgerlens(t, "import", "--repo", dir, src)
	require.NoError(t, err)
	_, _, err = runLedgerlens(t, "import", "--repo", dir, src)
	require.NoError(t, err)

	ledgers, err := ledger.NewStore(dir).Load()
	require.NoError(t, err)
	require.Len(t, ledgers, 1)
	assert.Len(t, ledgers[0].Transactions, 12)
}

func TestImport_UnreadableStatement(t *testing.T) {
	dir := initWorkspace(t)
	bad := filepath.Join(dir, "import", "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("nothing to see here\n"), 0o644))

	out, _, err := runLedgerlens(t, "import", "--repo", dir)
	require.Error(t, err)
	assert.Contains(t, out, "could not read file bad.txt: parsing kaspi statement: statement header not found")
	assert.FileExists(t, bad, "failed statements stay in import/")

	entries, err := importlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, importlog.ActionFailed, entries[0].Action)
}

func TestImport_NothingToDo(t *testing.T) {
	dir := initWorkspace(t)
	out, _, err := runLedgerlens(t, "import", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No statements to import")
}

func TestImport_UnknownFormat(t *testing.T) {
	dir := initWorkspace(t)
	_, _, err := runLedgerlens(t, "import", "--repo", dir, "--format", "swift")
	assert.ErrorContains(t, err, `unknown statement format "swift"`)
}

func TestImport_VerboseLogsSkippedRows(t *testing.T) {
	dir := initWorkspace(t)
	src := filepath.Join(t.TempDir(), "statement.txt")
	copyFixture(t, src)

	_, stderr, err := runLedgerlens(t, "import", "--repo", dir, "--verbose", src)
	require.NoError(t, err)
	assert.Contains(t, stderr, "skipping statement row")
}

func TestAdd(t *testing.T) {
	dir := initWorkspace(t)

	out, _, err := runLedgerlens(t, "add", "--repo", dir,
		"--amount", "1250,50", "--category", "Food & Dining", "--date", "2024-04-02", "--description", "lunch")
	require.NoError(t, err)
	assert.Contains(t, out, "Added expense")
	assert.Contains(t, out, "to April 2024")

	_, _, err = runLedgerlens(t, "add", "--repo", dir,
		"--amount", "5000", "--category", "Income", "--date", "2024-04-01", "--income")
	require.NoError(t, err)

	ledgers, err := ledger.NewStore(dir).Load()
	require.NoError(t, err)
	require.Len(t, ledgers, 1)
	require.Len(t, ledgers[0].Transactions, 2)
	assert.Equal(t, "1250.5", ledgers[0].Transactions[0].Amount.String())
	assert.Equal(t, model.KindIncome, ledgers[0].Transactions[1].Kind)
}

func TestAdd_Rejected(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative amount", []string{"--amount", "-5", "--category", "Other"}},
		{"zero amount", []string{"--amount", "0", "--category", "Other"}},
		{"unknown category", []string{"--amount", "5", "--category", "Gadgets"}},
		{"bad date", []string{"--amount", "5", "--category", "Other", "--date", "02.04.2024"}},
		{"missing category", []string{"--amount", "5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := initWorkspace(t)
			_, _, err := runLedgerlens(t, append([]string{"add", "--repo", dir}, tt.args...)...)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidEntry)
			assert.NoFileExists(t, ledger.NewStore(dir).Path())
		})
	}
}

func TestReports(t *testing.T) {
	dir := initWorkspace(t)
	copyFixture(t, filepath.Join(dir, "import", "march.txt"))
	_, _, err := runLedgerlens(t, "import", "--repo", dir)
	require.NoError(t, err)

	out, _, err := runLedgerlens(t, "ledgers", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "March 2024")

	out, _, err = runLedgerlens(t, "ledgers", "--repo", dir, "--month", "March 2024")
	require.NoError(t, err)
	assert.Contains(t, out, "COFFEE HOUSE")
	assert.Contains(t, out, "Transportation")

	out, _, err = runLedgerlens(t, "summary", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03")

	out, _, err = runLedgerlens(t, "distribution", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Shopping")
	assert.NotContains(t, out, "Income")

	out, _, err = runLedgerlens(t, "savings", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "85.0%")

	out, _, err = runLedgerlens(t, "forecast", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Not enough data for a forecast: need 3 months, have 1")

	out, _, err = runLedgerlens(t, "overview", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Months: 1")
	assert.NotContains(t, out, "Spending trend")
}

func TestForecast_ThreeMonths(t *testing.T) {
	dir := initWorkspace(t)
	for _, e := range [][2]string{{"2024-01-10", "1000"}, {"2024-02-10", "1100"}, {"2024-03-10", "1200"}} {
		_, _, err := runLedgerlens(t, "add", "--repo", dir, "--amount", e[1], "--category", "Groceries", "--date", e[0])
		require.NoError(t, err)
	}

	out, _, err := runLedgerlens(t, "forecast", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "confidence 100%")

	out, _, err = runLedgerlens(t, "overview", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Spending trend: 20.0%")
}

func TestRepoFromEnv(t *testing.T) {
	dir := initWorkspace(t)
	t.Setenv(commands.RepoEnv, dir)

	out, _, err := runLedgerlens(t, "ledgers")
	require.NoError(t, err)
	assert.Contains(t, out, "No ledgers yet")
}

func TestEmptyReports(t *testing.T) {
	dir := initWorkspace(t)
	for _, c := range []string{"summary", "distribution", "savings", "forecast", "overview"} {
		out, _, err := runLedgerlens(t, c, "--repo", dir)
		require.NoError(t, err, c)
		assert.Contains(t, out, "No transactions yet", c)
	}
}
