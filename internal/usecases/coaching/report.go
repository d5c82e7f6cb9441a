package coaching

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Benchmarks each KPI is graded against in the summary table.
const (
	benchmarkEngagement   = 50
	benchmarkVolume       = 80
	benchmarkAdoption     = 70
	benchmarkTransparency = 80
)

// formatReviewMarkdown renders the performance review. The document structure
// is fixed; only the KPI cells, the insight labels and a handful of bullets
// vary with the data. The wording is load-bearing: coaches paste these reports
// into dealer communication, so keep any edits deliberate.
func formatReviewMarkdown(dealerName, userName string, kpis *KPIs, debugInfo string, now time.Time) string {
	dateStr := now.Format("January 02, 2006")
	shortDateStr := now.Format("01/02/2006")
	timestamp := now.Format("01/02/2006 03:04 PM")

	var b strings.Builder

	fmt.Fprintf(&b, "### %s – Service Department Performance Review\n\n", dealerName)
	fmt.Fprintf(&b, "* **Customer Engagement Manager:** %s\n", userName)
	fmt.Fprintf(&b, "* **Date:** %s\n", dateStr)
	fmt.Fprintf(&b, "* 📊 Data reflects Vitally metrics pulled as of %s.\n\n", shortDateStr)

	b.WriteString("---\n\n")
	b.WriteString("#### Section 0 – KPI Summary\n\n")

	b.WriteString("| Metric | Value | Performance Insight |\n")
	b.WriteString("| :--- | :--- | :--- |\n")
	fmt.Fprintf(&b, "| Active Conversations | **%s** | %s |\n",
		kpiValue(kpis.activeConversation(), false), insight(kpis.activeConversation(), benchmarkEngagement, "Engagement"))
	fmt.Fprintf(&b, "| Total MPIs (Sent/MTD) | **%s** | %s |\n",
		kpiValue(kpis.totalMPISent(), false), insight(kpis.totalMPISent(), benchmarkVolume, "Volume"))
	fmt.Fprintf(&b, "| Tech Video Adoption | **%s** | %s |\n",
		kpiValue(kpis.techVideoPercent(), true), insight(kpis.techVideoPercent(), benchmarkAdoption, "Adoption"))
	fmt.Fprintf(&b, "| Inspections Completed | **%s** | %s |\n\n",
		kpiValue(kpis.inspectionsPercent(), true), insight(kpis.inspectionsPercent(), benchmarkTransparency, "Transparency"))

	if kpis == nil || (kpis.ActiveConversation == nil && kpis.TotalMPISent == nil && kpis.ClosedROsWithTechVideoPercent == nil) {
		b.WriteString("* *Note: KPI mapping mismatch detected for this store's configuration.*\n\n")
		if debugInfo != "" {
			b.WriteString("> [!NOTE]\n")
			b.WriteString("> **Diagnostic Metadata (Debug Only):**\n")
			fmt.Fprintf(&b, "> %s\n\n", debugInfo)
		}
	}

	b.WriteString("---\n\n")

	b.WriteString("#### 1. Positives\n\n")
	if v := kpis.inspectionsPercent(); v != nil && *v > 80 {
		b.WriteString("* **High Transparency**: Technical inspection delivery is exceptional, building strong customer trust.\n")
	} else {
		b.WriteString("* **Leadership Commitment**: The team shows consistent effort in processing repair orders through the digital platform.\n")
	}
	b.WriteString("* **Operational Foundation**: Core workflows are established and being utilized daily.\n\n")

	b.WriteString("#### 2. Areas to Improve\n\n")
	if v := kpis.activeConversation(); v != nil && *v < 50 {
		b.WriteString("* **Proactive Messaging**: Current active threads suggest advisors may be reactive. Implementation of \"Mid-Repair\" status updates is recommended.\n")
	}
	b.WriteString("* **Video Quality & Consistency**: Ensure every RO includes a high-quality video to drive approval rates.\n\n")

	b.WriteString("#### 3. Prioritized Next Steps (30/60/90-Day Plan)\n\n")
	b.WriteString("| Timeframe | Focus Area | Action Owner | KPI Target |\n")
	b.WriteString("| :--- | :--- | :--- | :--- |\n")
	b.WriteString("| 30 Days | Advisor Texting Habits | Service Manager | 75+ Active Threads |\n")
	b.WriteString("| 60 Days | 100% MPI Compliance | Shop Foreman | 400+ MPIs Sent |\n")
	b.WriteString("| 90 Days | Video Quality Review | Service Leads | 80% Video Adoption |\n\n")

	b.WriteString("#### 4. Word Track (Coaching Script)\n\n")
	b.WriteString("> \"Team, I want to recognize the incredible work on our inspection transparency. Our customers are seeing the value of our work more than ever before.\n\n")
	b.WriteString("> However, we have a major opportunity to take this trust to the next level by over-communicating. If we can bump our texting engagement up and make those status updates proactive, we'll see approval times drop and scores rise.\n\n")
	b.WriteString("> My goal is for every customer to feel uniquely informed throughout their visit. Let's aim for at least two status updates per RO starting today.\"\n\n")

	b.WriteString("#### 5. Executive Summary\n\n")
	b.WriteString("* **Top Strengths**: Inspection Delivery & Digital Trust.\n")
	b.WriteString("* **Key Opportunities**: Proactive Advisor Engagement & Video Volume.\n")
	b.WriteString("* **Strategic Recommendation**: Standardize a texting cadence for all service advisors.\n")
	fmt.Fprintf(&b, "* **Overall Rating**: %s\n\n", overallRating(kpis))

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "*Data reflects Vitally metrics pulled as of %s.*", timestamp)

	return b.String()
}

// kpiValue renders one summary-table cell.
func kpiValue(val *float64, isPercent bool) string {
	if val == nil {
		return "No data returned"
	}

	formatted := strconv.FormatFloat(*val, 'f', -1, 64)
	if isPercent {
		return formatted + "%"
	}
	return formatted
}

// insight grades a value against its benchmark.
func insight(val *float64, benchmark float64, label string) string {
	if val == nil {
		return "—"
	}

	if *val >= benchmark {
		return fmt.Sprintf("✅ Strong %s", label)
	}
	return fmt.Sprintf("⚠️ Opportunity for %s", label)
}

func overallRating(kpis *KPIs) string {
	if kpis != nil {
		return "🟢 Strong Performing"
	}
	return "🟡 Reviewing Metrics"
}

// nil-safe accessors so the renderer reads naturally when the whole KPI set is
// absent (upstream failure paths pass kpis == nil).

func (k *KPIs) activeConversation() *float64 {
	if k == nil {
		return nil
	}
	return k.ActiveConversation
}

func (k *KPIs) totalMPISent() *float64 {
	if k == nil {
		return nil
	}
	return k.TotalMPISent
}

func (k *KPIs) techVideoPercent() *float64 {
	if k == nil {
		return nil
	}
	return k.ClosedROsWithTechVideoPercent
}

func (k *KPIs) inspectionsPercent() *float64 {
	if k == nil {
		return nil
	}
	return k.InspectionsCompletedPercent
}
