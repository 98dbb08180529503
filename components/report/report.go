package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gitlab.com/golang-commonmark/markdown"
	"gopkg.in/yaml.v3"

	"github.com/bububa/food-agents/components"
	"github.com/bububa/food-agents/schema"
)

// Format of a rendered report
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatMarkdown, FormatHTML, FormatYAML, FormatJSON}

// ParseFormat returns the format named s, FormatText when s is empty
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	for _, f := range Formats {
		if Format(s) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown report format: %s", s)
}

// Title heads every report
const Title = "📋 식품 재료 분석 결과 📋"

const (
	headingIngredients  = "🔍 추출된 재료"
	headingDescriptions = "📚 재료 설명"
	headingHealthTips   = "💊 건강 팁"
	headingAssessment   = "🧐 종합 평가"
	headingSuitability  = "⭐ 적합도"
	headingAdvice       = "💡 추가 조언"
	headingAlternatives = "🔄 대체 재료 제안"
	headingCookingTips  = "👨‍🍳 조리 팁"
)

// Render renders result in format
func Render(result *components.Result, format Format) (string, error) {
	switch format {
	case FormatText, "":
		return Text(result), nil
	case FormatMarkdown:
		return Markdown(result), nil
	case FormatHTML:
		return HTML(result), nil
	case FormatYAML:
		bs, err := yaml.Marshal(result)
		if err != nil {
			return "", err
		}
		return string(bs), nil
	case FormatJSON:
		bs, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(bs), nil
	}
	return "", fmt.Errorf("unknown report format: %s", format)
}

// Text renders the plain text report. Sections of stages that have not
// committed, and empty stage 4 and 5 sections, are left out.
func Text(result *components.Result) string {
	var sb strings.Builder
	sb.WriteString(Title)
	sb.WriteString("\n\n")
	for id := schema.StageExtraction; id <= result.Completed(); id++ {
		sb.WriteString(Section(result, id))
	}
	return sb.String()
}

// Section renders the text report section owned by stage id
func Section(result *components.Result, id schema.StageID) string {
	var sb strings.Builder
	switch id {
	case schema.StageExtraction:
		writeHeading(&sb, headingIngredients)
		for idx, v := range result.Ingredients {
			fmt.Fprintf(&sb, "%d. %s\n", idx+1, v)
		}
		sb.WriteString("\n")
	case schema.StageDescription:
		writeNamed(&sb, headingDescriptions, result.Descriptions, result.Ingredients)
	case schema.StageHealthTips:
		writeNamed(&sb, headingHealthTips, result.HealthTips, result.Ingredients)
	case schema.StageAssessment:
		if v := deref(result.OverallAssessment); v != "" {
			writeHeading(&sb, headingAssessment)
			sb.WriteString(v + "\n\n")
		}
		if v := deref(result.Suitability); v != "" {
			writeHeading(&sb, headingSuitability)
			sb.WriteString(v + "\n\n")
		}
		if len(result.AdditionalAdvice) > 0 {
			writeHeading(&sb, headingAdvice)
			for idx, v := range result.AdditionalAdvice {
				fmt.Fprintf(&sb, "%d. [%s] %s\n", idx+1, v.Category, v.Content)
			}
			sb.WriteString("\n")
		}
	case schema.StageAlternatives:
		if len(result.Alternatives) > 0 {
			writeHeading(&sb, headingAlternatives)
			for idx, v := range result.Alternatives {
				fmt.Fprintf(&sb, "%d. %s → %s\n", idx+1, v.Original, v.Substitute)
				fmt.Fprintf(&sb, "   이유: %s\n", v.Reason)
			}
			sb.WriteString("\n")
		}
		if v := deref(result.CookingTips); v != "" {
			writeHeading(&sb, headingCookingTips)
			sb.WriteString(v + "\n")
		}
	}
	return sb.String()
}

// Markdown renders the report as a markdown document
func Markdown(result *components.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", strings.Trim(Title, "📋 "))
	if result.Ingredients != nil {
		fmt.Fprintf(&sb, "## %s\n\n", headingIngredients)
		for _, v := range result.Ingredients {
			fmt.Fprintf(&sb, "- %s\n", v)
		}
		sb.WriteString("\n")
	}
	for _, section := range []struct {
		heading string
		values  map[string]string
	}{
		{heading: headingDescriptions, values: result.Descriptions},
		{heading: headingHealthTips, values: result.HealthTips},
	} {
		if len(section.values) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "## %s\n\n", section.heading)
		for _, name := range orderedKeys(section.values, result.Ingredients) {
			fmt.Fprintf(&sb, "- **%s**: %s\n", name, section.values[name])
		}
		sb.WriteString("\n")
	}
	if v := deref(result.OverallAssessment); v != "" {
		fmt.Fprintf(&sb, "## %s\n\n%s\n\n", headingAssessment, v)
	}
	if v := deref(result.Suitability); v != "" {
		fmt.Fprintf(&sb, "## %s\n\n**%s**\n\n", headingSuitability, v)
	}
	if len(result.AdditionalAdvice) > 0 {
		fmt.Fprintf(&sb, "## %s\n\n", headingAdvice)
		for _, v := range result.AdditionalAdvice {
			fmt.Fprintf(&sb, "- **%s**: %s\n", v.Category, v.Content)
		}
		sb.WriteString("\n")
	}
	if len(result.Alternatives) > 0 {
		fmt.Fprintf(&sb, "## %s\n\n| 원재료 | 대체재료 | 이유 |\n| --- | --- | --- |\n", headingAlternatives)
		for _, v := range result.Alternatives {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", escapeCell(v.Original), escapeCell(v.Substitute), escapeCell(v.Reason))
		}
		sb.WriteString("\n")
	}
	if v := deref(result.CookingTips); v != "" {
		fmt.Fprintf(&sb, "## %s\n\n%s\n", headingCookingTips, v)
	}
	return sb.String()
}

// HTML renders the markdown report to an HTML fragment
func HTML(result *components.Result) string {
	md := markdown.New(markdown.XHTMLOutput(true), markdown.Tables(true), markdown.HTML(false))
	return md.RenderToString([]byte(Markdown(result)))
}

func writeHeading(sb *strings.Builder, heading string) {
	sb.WriteString(heading)
	sb.WriteString(":\n")
}

func writeNamed(sb *strings.Builder, heading string, values map[string]string, ingredients []string) {
	writeHeading(sb, heading)
	for idx, name := range orderedKeys(values, ingredients) {
		fmt.Fprintf(sb, "%d. %s: %s\n", idx+1, name, values[name])
	}
	sb.WriteString("\n")
}

// orderedKeys lists the keys of values in ingredient order, then the
// remaining keys sorted
func orderedKeys(values map[string]string, ingredients []string) []string {
	ret := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, name := range ingredients {
		if _, ok := values[name]; !ok {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		ret = append(ret, name)
	}
	rest := make([]string, 0, len(values)-len(ret))
	for name := range values {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(ret, rest...)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "|", "\\|"), "\n", " ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
