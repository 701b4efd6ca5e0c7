package knowledge_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/rakshak-ai/rakshak/pkg/domain/model"
	"github.com/rakshak-ai/rakshak/pkg/service/knowledge"
)

func TestEmbed(t *testing.T) {
	t.Run("deterministic for identical input", func(t *testing.T) {
		a := knowledge.Embed("severe chest pain and shortness of breath")
		b := knowledge.Embed("severe chest pain and shortness of breath")
		gt.Value(t, a).Equal(b)
	})

	t.Run("fixed dimension", func(t *testing.T) {
		v := knowledge.Embed("mild headache")
		gt.Array(t, v).Length(model.EmbeddingDimension)
	})

	t.Run("values scaled to unit interval", func(t *testing.T) {
		v := knowledge.Embed("fever and cough")
		for _, x := range v {
			gt.Number(t, x).GreaterOrEqual(0)
			gt.Number(t, x).LessOrEqual(1)
		}
	})

	t.Run("empty input embeds without error", func(t *testing.T) {
		v := knowledge.Embed("")
		gt.Array(t, v).Length(model.EmbeddingDimension)
		gt.Value(t, v).Equal(knowledge.Embed(""))
	})

	t.Run("different inputs yield different vectors", func(t *testing.T) {
		a := knowledge.Embed("chest pain")
		b := knowledge.Embed("skin rash")
		gt.Value(t, a).NotEqual(b)
	})
}
