package config_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-tarjeta/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "IA AIE - Control Tarjeta Cabal Credicoop", cfg.Report.Title)
	assert.Equal(t, "IA_AIE_Control_Tarjeta_Cabal_Credicoop", cfg.Report.FileName)
	assert.Equal(t, int64(50*1024*1024), cfg.Upload.MaxBytes())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.JWT.Enabled())
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("UPLOAD_MAX_MB", "5")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REPORT_TITLE", "Otro título")
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxBytes())
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "Otro título", cfg.Report.Title)
	assert.True(t, cfg.JWT.Enabled())
}

func TestLoad_LimiteInvalido(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("UPLOAD_MAX_MB", "0")

	_, err := config.Load()

	assert.Error(t, err)
}

func TestReportConfig_Location(t *testing.T) {
	loc := config.ReportConfig{Timezone: "Zona/Inexistente"}.Location()
	assert.Equal(t, time.Local, loc)
}

func TestReportConfig_LoadLocation(t *testing.T) {
	loc, err := config.ReportConfig{Timezone: "America/Argentina/Buenos_Aires"}.LoadLocation()
	require.NoError(t, err)
	assert.Equal(t, "America/Argentina/Buenos_Aires", loc.String())

	loc, err = config.ReportConfig{Timezone: "Zona/Inexistente"}.LoadLocation()
	assert.Error(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = config.ReportConfig{}.LoadLocation()
	assert.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}
