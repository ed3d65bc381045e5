package services

import (
	"strings"
	"testing"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportBlog(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	reporter := createTestUser(t, env.db, "reporter")
	blog := createTestBlog(t, env.db, owner.ID, "post")

	report, err := env.reports.Create(reporter.ID, &models.CreateReportRequest{
		BlogID:  &blog.ID,
		Reason:  string(models.ReportReasonSpam),
		Details: "obvious spam",
	})
	require.NoError(t, err)
	require.NotNil(t, report.BlogID)
	assert.Equal(t, blog.ID, *report.BlogID)
	assert.Nil(t, report.ReportedUserID)
}

func TestReportUser(t *testing.T) {
	env := newTestEnv(t)
	target := createTestUser(t, env.db, "target")
	reporter := createTestUser(t, env.db, "reporter")

	report, err := env.reports.Create(reporter.ID, &models.CreateReportRequest{
		ReportedUserID: &target.ID,
		Reason:         string(models.ReportReasonHarassment),
	})
	require.NoError(t, err)
	require.NotNil(t, report.ReportedUserID)
	assert.Equal(t, target.ID, *report.ReportedUserID)
	assert.Nil(t, report.BlogID)
}

func TestReportRequiresExactlyOneTarget(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	reporter := createTestUser(t, env.db, "reporter")
	blog := createTestBlog(t, env.db, owner.ID, "post")

	_, err := env.reports.Create(reporter.ID, &models.CreateReportRequest{
		Reason: string(models.ReportReasonSpam),
	})
	assert.Equal(t, KindBadRequest, KindOf(err))

	_, err = env.reports.Create(reporter.ID, &models.CreateReportRequest{
		BlogID:         &blog.ID,
		ReportedUserID: &owner.ID,
		Reason:         string(models.ReportReasonSpam),
	})
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestReportSelfIsBadRequest(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	blog := createTestBlog(t, env.db, owner.ID, "post")

	_, err := env.reports.Create(owner.ID, &models.CreateReportRequest{
		BlogID: &blog.ID,
		Reason: string(models.ReportReasonSpam),
	})
	assert.Equal(t, KindBadRequest, KindOf(err))

	_, err = env.reports.Create(owner.ID, &models.CreateReportRequest{
		ReportedUserID: &owner.ID,
		Reason:         string(models.ReportReasonOther),
	})
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestReportValidation(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.db, "owner")
	reporter := createTestUser(t, env.db, "reporter")
	blog := createTestBlog(t, env.db, owner.ID, "post")

	_, err := env.reports.Create(reporter.ID, &models.CreateReportRequest{
		BlogID:  &blog.ID,
		Reason:  string(models.ReportReasonSpam),
		Details: strings.Repeat("x", 501),
	})
	assert.Equal(t, KindBadRequest, KindOf(err))

	missing := uint(9999)
	_, err = env.reports.Create(reporter.ID, &models.CreateReportRequest{
		BlogID: &missing,
		Reason: string(models.ReportReasonSpam),
	})
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = env.reports.Create(reporter.ID, &models.CreateReportRequest{
		ReportedUserID: &missing,
		Reason:         string(models.ReportReasonSpam),
	})
	assert.Equal(t, KindNotFound, KindOf(err))
}
