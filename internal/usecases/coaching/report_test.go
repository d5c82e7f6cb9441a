package coaching

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var frozenClock = time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)

func TestFormatReviewMarkdown_Deterministic(t *testing.T) {
	kpis := &KPIs{
		ActiveConversation: floatPtr(65),
		TotalMPISent:       floatPtr(90),
	}

	first := formatReviewMarkdown("Acme Auto", "Jordan Reyes", kpis, "", frozenClock)
	second := formatReviewMarkdown("Acme Auto", "Jordan Reyes", kpis, "", frozenClock)

	assert.Equal(t, first, second)
}

func TestFormatReviewMarkdown_HeaderAndFooterDates(t *testing.T) {
	markdown := formatReviewMarkdown("Acme Auto", "Jordan Reyes", &KPIs{}, "", frozenClock)

	assert.Contains(t, markdown, "### Acme Auto – Service Department Performance Review")
	assert.Contains(t, markdown, "* **Customer Engagement Manager:** Jordan Reyes")
	assert.Contains(t, markdown, "* **Date:** March 05, 2026")
	assert.Contains(t, markdown, "* 📊 Data reflects Vitally metrics pulled as of 03/05/2026.")
	assert.True(t, strings.HasSuffix(markdown, "*Data reflects Vitally metrics pulled as of 03/05/2026 02:30 PM.*"))
}

func TestFormatReviewMarkdown_KPITable(t *testing.T) {
	kpis := &KPIs{
		ActiveConversation:            floatPtr(65),
		TotalMPISent:                  floatPtr(90),
		ClosedROsWithTechVideoPercent: floatPtr(64.5),
	}

	markdown := formatReviewMarkdown("Acme Auto", "Jordan Reyes", kpis, "", frozenClock)

	assert.Contains(t, markdown, "| Active Conversations | **65** | ✅ Strong Engagement |")
	assert.Contains(t, markdown, "| Total MPIs (Sent/MTD) | **90** | ✅ Strong Volume |")
	assert.Contains(t, markdown, "| Tech Video Adoption | **64.5%** | ⚠️ Opportunity for Adoption |")
	assert.Contains(t, markdown, "| Inspections Completed | **No data returned** | — |")

	// first three KPIs are not all absent, so no mismatch note
	assert.NotContains(t, markdown, "KPI mapping mismatch detected")
}

func TestFormatReviewMarkdown_BenchmarkBoundaryIsStrong(t *testing.T) {
	kpis := &KPIs{ActiveConversation: floatPtr(50)}

	markdown := formatReviewMarkdown("Acme Auto", "Jordan Reyes", kpis, "", frozenClock)

	assert.Contains(t, markdown, "✅ Strong Engagement")
	assert.NotContains(t, markdown, "**Proactive Messaging**")
}

func TestFormatReviewMarkdown_LowEngagementBullet(t *testing.T) {
	kpis := &KPIs{ActiveConversation: floatPtr(49.9)}

	markdown := formatReviewMarkdown("Acme Auto", "Jordan Reyes", kpis, "", frozenClock)

	assert.Contains(t, markdown, "⚠️ Opportunity for Engagement")
	assert.Contains(t, markdown, "**Proactive Messaging**")
}

func TestFormatReviewMarkdown_PositivesBranch(t *testing.T) {
	t.Run("high transparency above 80", func(t *testing.T) {
		kpis := &KPIs{InspectionsCompletedPercent: floatPtr(85)}

		markdown := formatReviewMarkdown("Acme Auto", "Jordan Reyes", kpis, "", frozenClock)

		assert.Contains(t, markdown, "**High Transparency**")
		assert.NotContains(t, markdown, "**Leadership Commitment**")
	})

	t.Run("exactly 80 falls to generic bullet", func(t *testing.T) {
		kpis := &KPIs{InspectionsCompletedPercent: floatPtr(80)}

		markdown := formatReviewMarkdown("Acme Auto", "Jordan Reyes", kpis, "", frozenClock)

		assert.Contains(t, markdown, "**Leadership Commitment**")
		assert.NotContains(t, markdown, "**High Transparency**")
	})
}

func TestFormatReviewMarkdown_MismatchNoteAndDiagnostics(t *testing.T) {
	markdown := formatReviewMarkdown("Acme Auto", "Jordan Reyes", &KPIs{}, "Available fields: mrr, healthScore...", frozenClock)

	assert.Contains(t, markdown, "* *Note: KPI mapping mismatch detected for this store's configuration.*")
	assert.Contains(t, markdown, "> [!NOTE]")
	assert.Contains(t, markdown, "> **Diagnostic Metadata (Debug Only):**")
	assert.Contains(t, markdown, "> Available fields: mrr, healthScore...")
}

func TestFormatReviewMarkdown_OverallRating(t *testing.T) {
	withKPIs := formatReviewMarkdown("Acme Auto", "Jordan Reyes", &KPIs{}, "", frozenClock)
	withoutKPIs := formatReviewMarkdown("Acme Auto", "Jordan Reyes", nil, "", frozenClock)

	assert.Contains(t, withKPIs, "* **Overall Rating**: 🟢 Strong Performing")
	assert.Contains(t, withoutKPIs, "* **Overall Rating**: 🟡 Reviewing Metrics")
}

func TestFormatReviewMarkdown_StaticSectionsAlwaysPresent(t *testing.T) {
	markdown := formatReviewMarkdown("Acme Auto", "Jordan Reyes", nil, "", frozenClock)

	assert.Contains(t, markdown, "#### 3. Prioritized Next Steps (30/60/90-Day Plan)")
	assert.Contains(t, markdown, "| 30 Days | Advisor Texting Habits | Service Manager | 75+ Active Threads |")
	assert.Contains(t, markdown, "#### 4. Word Track (Coaching Script)")
	assert.Contains(t, markdown, "Let's aim for at least two status updates per RO starting today.")
	assert.Contains(t, markdown, "* **Video Quality & Consistency**: Ensure every RO includes a high-quality video to drive approval rates.")
}
