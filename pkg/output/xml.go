package output

import (
	"io"
	"strconv"

	"github.com/arthur-debert/factory/pkg/registry"
	"github.com/beevik/etree"
)

type xmlRenderer struct {
	w io.Writer
}

func (r *xmlRenderer) RenderReport(report Report) error {
	doc, root := newDocument("catalog")
	for _, reg := range report.Registries {
		el := root.CreateElement("registry")
		el.CreateAttr("interface", reg.Interface)
		el.CreateAttr("policy", reg.Policy)
		el.CreateAttr("sealed", strconv.FormatBool(reg.Sealed))
		el.CreateAttr("count", strconv.Itoa(reg.Count))
		for _, e := range reg.Entries {
			entry := el.CreateElement("entry")
			entry.CreateAttr("id", e.ID)
			entry.CreateAttr("producer", e.Producer)
		}
		for _, d := range reg.Duplicates {
			addDuplicate(el, d)
		}
	}
	return r.write(doc)
}

func (r *xmlRenderer) RenderProduct(product Product) error {
	doc, root := newDocument("product")
	root.CreateAttr("interface", product.Interface)
	root.CreateAttr("id", product.ID)
	root.SetText(product.Description)
	return r.write(doc)
}

func (r *xmlRenderer) RenderDuplicates(report DuplicateReport) error {
	doc, root := newDocument("duplicates")
	for _, d := range report.Duplicates {
		addDuplicate(root, d)
	}
	return r.write(doc)
}

func addDuplicate(parent *etree.Element, d registry.Duplicate) {
	el := parent.CreateElement("duplicate")
	el.CreateAttr("interface", d.Interface)
	el.CreateAttr("id", d.ID)
	el.CreateAttr("same-producer", strconv.FormatBool(d.SameProducer))
	el.CreateElement("previous").SetText(d.Previous)
	el.CreateElement("current").SetText(d.Current)
}

func newDocument(rootTag string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc, doc.CreateElement(rootTag)
}

func (r *xmlRenderer) write(doc *etree.Document) error {
	doc.Indent(2)
	if _, err := doc.WriteTo(r.w); err != nil {
		return writeErr(err)
	}
	return nil
}
