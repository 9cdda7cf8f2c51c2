package ddlgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/ddlgen"
)

type OrderItem struct{ ddlgen.Schema }

type Person struct{ ddlgen.Schema }

func (Person) Table() string { return "people_tbl" }

func TestTableName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "pairs", ddlgen.TableName(Pair{}))
	assert.Equal(t, "order_items", ddlgen.TableName(&OrderItem{}))
	assert.Equal(t, "people_tbl", ddlgen.TableName(Person{}))
	assert.Equal(t, "", ddlgen.TableName(nil))
}

func TestSchema_Defaults(t *testing.T) {
	t.Parallel()
	var s ddlgen.Schema
	assert.Nil(t, s.Fields())
	assert.Nil(t, s.Mixin())
}
