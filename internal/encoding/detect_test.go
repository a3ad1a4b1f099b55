package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/gompdf/invoicepdf/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := `{"seller":{"name":"Zakład Usług Łódź"}}`
	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	text := "Société Générale, référence de la facture: prestations réalisées en été, café et crème.\n"
	latin1, err := charmap.Windows1252.NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)

	got, err := encoding.ReadAll(bytes.NewReader(latin1))
	require.NoError(t, err)
	assert.Equal(t, text, string(got))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"language":"pl"}`)...)

	got, err := encoding.ReadAll(bytes.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, `{"language":"pl"}`, string(got))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	input, err := enc.Bytes([]byte(`{"buyer":"Київ"}`))
	require.NoError(t, err)

	got, err := encoding.ReadAll(bytes.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, `{"buyer":"Київ"}`, string(got))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	got, err := encoding.ReadAll(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewUTF8Reader_LongInputIsNotTruncated(t *testing.T) {
	input := bytes.Repeat([]byte("ąęśćżźół "), 1000)
	got, err := encoding.ReadAll(bytes.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestDetectKnowsCyrillicCodePage(t *testing.T) {
	text := "Счёт на оплату услуг за январь. Поставщик и покупатель подписали акт выполненных работ. " +
		"Оплата производится в течение десяти дней после получения счёта."
	b, err := charmap.Windows1251.NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)

	got, err := encoding.ReadAll(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, text, string(got))
}
