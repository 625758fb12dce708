package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jacoco-tools/covertree/jacoco"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `<report name="demo">
    <package name="p">
        <class name="Foo" sourcefilename="Foo.java">
            <method name="bar" desc="()V" line="3">
                <counter type="LINE" missed="2" covered="5"/>
            </method>
        </class>
        <sourcefile name="Foo.java"/>
    </package>
</report>`

func TestPrintTree(t *testing.T) {
	root, err := jacoco.Parse(strings.NewReader(sampleReport), "report.xml")
	require.NoError(t, err)

	var buf bytes.Buffer
	printTree(&buf, root, 0)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"MODULE demo: report.xml",
		"  PACKAGE p",
		"    FILE Foo.java",
		"      CLASS Foo",
		"        METHOD bar",
		"          LINE 5/7",
	}, lines)
}

func TestPrintSummary(t *testing.T) {
	root, err := jacoco.Parse(strings.NewReader(sampleReport), "report.xml")
	require.NoError(t, err)

	var buf bytes.Buffer
	printSummary(&buf, root)
	assert.Contains(t, buf.String(), "1 packages, 1 files, 1 classes, 1 methods")
}

func TestPrintJSON(t *testing.T) {
	root, err := jacoco.Parse(strings.NewReader(sampleReport), "report.xml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, root))

	var decoded jsonNode
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "MODULE", decoded.Metric)
	assert.Equal(t, "demo: report.xml", decoded.Name)
	require.Len(t, decoded.Children, 1)
	assert.Equal(t, "PACKAGE", decoded.Children[0].Metric)

	method := decoded.Children[0].Children[0].Children[0].Children[0]
	assert.Equal(t, "METHOD", method.Metric)
	require.Len(t, method.Leaves, 1)
	assert.Equal(t, jsonLeaf{Metric: "LINE", Covered: 5, Missed: 2}, method.Leaves[0])
}
