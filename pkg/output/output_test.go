package output_test

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/arthur-debert/factory/pkg/errors"
	"github.com/arthur-debert/factory/pkg/output"
	"github.com/arthur-debert/factory/pkg/registry"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type Tool interface{ Use() string }

type hammer struct{}

func (hammer) Use() string { return "bang" }

func newHammer() Tool { return hammer{} }
func newMallet() Tool { return hammer{} }

func sampleCatalogs(t *testing.T) []registry.Catalog {
	t.Helper()
	r := registry.New[Tool](registry.WithReporter(nil))
	require.NoError(t, r.Register("hammer", newHammer))
	require.NoError(t, r.Register("saw", newHammer))
	err := r.Register("hammer", newMallet)
	require.True(t, errors.IsErrorCode(err, errors.ErrDuplicateRegistration))
	r.Seal()
	return []registry.Catalog{r}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  output.Format
	}{
		{"", output.FormatAuto},
		{"auto", output.FormatAuto},
		{"term", output.FormatTerminal},
		{"Terminal", output.FormatTerminal},
		{"text", output.FormatText},
		{"plain", output.FormatText},
		{"json", output.FormatJSON},
		{"yaml", output.FormatYAML},
		{"yml", output.FormatYAML},
		{"toml", output.FormatTOML},
		{" XML ", output.FormatXML},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := output.ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := output.ParseFormat("csv")
	require.Error(t, err)
	assert.Equal(t, errors.ErrOutputFormat, errors.GetErrorCode(err))
}

func TestFormatString(t *testing.T) {
	for _, name := range output.Formats() {
		f, err := output.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
	assert.Equal(t, "unknown", output.Format(99).String())
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, output.FormatText, output.DetectFormat(&bytes.Buffer{}))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, output.FormatText, output.DetectFormat(os.Stdout))
}

func TestBuildReport(t *testing.T) {
	report := output.BuildReport(sampleCatalogs(t))
	require.Len(t, report.Registries, 1)

	reg := report.Registries[0]
	assert.Equal(t, "output_test.Tool", reg.Interface)
	assert.Equal(t, "warn", reg.Policy)
	assert.True(t, reg.Sealed)
	assert.Equal(t, 2, reg.Count)
	require.Len(t, reg.Entries, 2)
	assert.Equal(t, "hammer", reg.Entries[0].ID)
	assert.Contains(t, reg.Entries[0].Producer, "newMallet")
	require.Len(t, reg.Duplicates, 1)
	assert.False(t, reg.Duplicates[0].SameProducer)

	dups := output.BuildDuplicateReport(sampleCatalogs(t))
	assert.Len(t, dups.Duplicates, 1)
	assert.NotNil(t, output.BuildDuplicateReport(nil).Duplicates)
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := output.New(&buf, output.FormatText)
	require.NoError(t, err)

	require.NoError(t, r.RenderReport(output.BuildReport(sampleCatalogs(t))))
	out := buf.String()
	assert.Contains(t, out, "output_test.Tool (2, warn, sealed)")
	assert.Contains(t, out, "hammer")
	assert.Contains(t, out, "saw")
	assert.Contains(t, out, `! duplicate "hammer": different producer registered with a duplicate id`)
	assert.NotContains(t, out, "\x1b[")

	buf.Reset()
	require.NoError(t, r.RenderReport(output.Report{}))
	assert.Equal(t, "No registries.\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderProduct(output.Product{Interface: "shapes.Shape", ID: "circle", Description: "round"}))
	assert.Equal(t, "shapes.Shape/circle round\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderDuplicates(output.DuplicateReport{}))
	assert.Equal(t, "No duplicate registrations.\n", buf.String())
}

func TestAutoResolvesToTextForBuffers(t *testing.T) {
	var buf bytes.Buffer
	r, err := output.New(&buf, output.FormatAuto)
	require.NoError(t, err)
	require.NoError(t, r.RenderProduct(output.Product{Interface: "I", ID: "x", Description: "d"}))
	assert.Equal(t, "I/x d\n", buf.String())
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := output.New(&buf, output.FormatTerminal)
	require.NoError(t, err)

	require.NoError(t, r.RenderReport(output.BuildReport(sampleCatalogs(t))))
	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "PRODUCER")
	assert.Contains(t, out, "saw")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := output.NewFromString(&buf, "json")
	require.NoError(t, err)
	require.NoError(t, r.RenderReport(output.BuildReport(sampleCatalogs(t))))

	var decoded output.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Registries, 1)
	assert.Equal(t, []string{"hammer", "saw"}, []string{
		decoded.Registries[0].Entries[0].ID, decoded.Registries[0].Entries[1].ID,
	})
	assert.Contains(t, buf.String(), `"same_producer": false`)
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := output.New(&buf, output.FormatYAML)
	require.NoError(t, err)
	require.NoError(t, r.RenderProduct(output.Product{Interface: "shapes.Shape", ID: "circle", Description: "round"}))

	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "circle", decoded["id"])
	assert.Equal(t, "round", decoded["description"])
}

func TestTOMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := output.New(&buf, output.FormatTOML)
	require.NoError(t, err)
	require.NoError(t, r.RenderReport(output.BuildReport(sampleCatalogs(t))))

	var decoded output.Report
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Registries, 1)
	assert.Equal(t, 2, decoded.Registries[0].Count)
	assert.Len(t, decoded.Registries[0].Duplicates, 1)
}

func TestXMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := output.New(&buf, output.FormatXML)
	require.NoError(t, err)
	require.NoError(t, r.RenderReport(output.BuildReport(sampleCatalogs(t))))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	reg := doc.FindElement("/catalog/registry")
	require.NotNil(t, reg)
	assert.Equal(t, "output_test.Tool", reg.SelectAttrValue("interface", ""))
	assert.Equal(t, "true", reg.SelectAttrValue("sealed", ""))
	assert.Len(t, reg.SelectElements("entry"), 2)

	dup := reg.SelectElement("duplicate")
	require.NotNil(t, dup)
	assert.Equal(t, "hammer", dup.SelectAttrValue("id", ""))
	assert.True(t, strings.HasSuffix(dup.SelectElement("current").Text(), "newMallet"))
}

func TestXMLDuplicatesAndProduct(t *testing.T) {
	var buf bytes.Buffer
	r, err := output.New(&buf, output.FormatXML)
	require.NoError(t, err)
	require.NoError(t, r.RenderProduct(output.Product{Interface: "I", ID: "x", Description: "desc"}))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	assert.Equal(t, "desc", doc.Root().Text())

	buf.Reset()
	require.NoError(t, r.RenderDuplicates(output.BuildDuplicateReport(sampleCatalogs(t))))
	doc = etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	assert.Len(t, doc.FindElements("//duplicate"), 1)
}
