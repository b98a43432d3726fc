package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelName(t *testing.T) {
	assert.Equal(t, "Point_Model", ModelName("Point"))
	assert.Equal(t, "Library_Model", ModelName("Library"))
}

func TestModelFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Point", "point_model.go"},
		{"OrderItem", "order_item_model.go"},
		{"HTTPServer", "http_server_model.go"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ModelFilename(tt.in))
	}
}

func TestExportedName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x", "X"},
		{"tags", "Tags"},
		{"orderID", "OrderID"},
		{"Name", "Name"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExportedName(tt.in))
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Point", "point"},
		{"customerName", "customer_name"},
		{"XMLParser", "xml_parser"},
		{"OrderID", "order_id"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SnakeCase(tt.in))
	}
}
