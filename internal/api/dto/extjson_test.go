package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/unifiedui/collection-service/internal/api/dto"
)

func TestDecodeDocument(t *testing.T) {
	v, err := dto.DecodeDocument(json.RawMessage(`{"b": 1, "a": {"$date": "2024-01-02T03:04:05Z"}, "c": [1, "x"]}`))
	require.NoError(t, err)

	doc, ok := v.(bson.D)
	require.True(t, ok)
	require.Len(t, doc, 3)
	assert.Equal(t, "b", doc[0].Key, "key order is preserved")
	assert.Equal(t, int32(1), doc[0].Value)
	assert.Equal(t, primitive.NewDateTimeFromTime(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)), doc[1].Value)
	assert.Equal(t, bson.A{int32(1), "x"}, doc[2].Value)
}

func TestDecodeDocument_Absent(t *testing.T) {
	for _, raw := range []string{"", "null", "  null "} {
		v, err := dto.DecodeDocument(json.RawMessage(raw))
		require.NoError(t, err)
		assert.Nil(t, v, "%q", raw)
	}

	v, err := dto.DecodeDocument(json.RawMessage(`{}`))
	require.NoError(t, err)
	doc, ok := v.(bson.D)
	assert.True(t, ok, "an empty object is not absent")
	assert.Empty(t, doc)
}

func TestDecodeDocument_Invalid(t *testing.T) {
	_, err := dto.DecodeDocument(json.RawMessage(`[1, 2]`))
	assert.Error(t, err)

	_, err = dto.DecodeDocument(json.RawMessage(`{"_id": {"$oid": "nothex"}}`))
	assert.Error(t, err)
}

func TestDecodeValue(t *testing.T) {
	v, err := dto.DecodeValue(json.RawMessage(`"name_1"`))
	require.NoError(t, err)
	assert.Equal(t, "name_1", v)

	v, err = dto.DecodeValue(json.RawMessage(`{"$numberLong": "5"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)

	v, err = dto.DecodeValue(nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDecodeArray(t *testing.T) {
	a, err := dto.DecodeArray(json.RawMessage(`[{"$match": {}}, {"$limit": 1}]`))
	require.NoError(t, err)
	assert.Len(t, a, 2)

	_, err = dto.DecodeArray(json.RawMessage(`{"$match": {}}`))
	assert.Error(t, err)
}

func TestDecodeDocuments(t *testing.T) {
	docs, err := dto.DecodeDocuments(json.RawMessage(`[{"a": 1}, {"b": 2}]`))
	require.NoError(t, err)
	assert.Equal(t, []bson.D{{{Key: "a", Value: int32(1)}}, {{Key: "b", Value: int32(2)}}}, docs)

	_, err = dto.DecodeDocuments(json.RawMessage(`[{"a": 1}, 2]`))
	assert.ErrorContains(t, err, "element 1")
}

func TestEncodeDocument(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex("65a1b2c3d4e5f6a7b8c9d0e1")
	require.NoError(t, err)

	raw, err := dto.EncodeDocument(bson.D{{Key: "_id", Value: oid}, {Key: "qty", Value: int64(3)}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id": {"$oid": "65a1b2c3d4e5f6a7b8c9d0e1"}, "qty": 3}`, string(raw))

	raw, err = dto.EncodeDocument(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestEncodeValue(t *testing.T) {
	raw, err := dto.EncodeValue(int32(7))
	require.NoError(t, err)
	assert.Equal(t, "7", string(raw))

	raw, err = dto.EncodeValue(bson.A{"a", bson.D{{Key: "b", Value: true}}})
	require.NoError(t, err)
	assert.JSONEq(t, `["a", {"b": true}]`, string(raw))
}

func TestNewIndexedIDs(t *testing.T) {
	ids, err := dto.NewIndexedIDs(map[int]interface{}{4: "d", 0: int32(1), 2: "c"})
	require.NoError(t, err)

	require.Len(t, ids, 3)
	assert.Equal(t, []int{0, 2, 4}, []int{ids[0].Index, ids[1].Index, ids[2].Index})
	assert.Equal(t, "1", string(ids[0].ID))
	assert.Equal(t, `"d"`, string(ids[2].ID))
}
