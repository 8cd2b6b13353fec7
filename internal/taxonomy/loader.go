package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Arquivos esperados no diretório de taxonomias. As tabelas são divididas
// por natureza para facilitar o versionamento independente.
const (
	ctaTablesFile  = "cta_taxonomies.json"
	urlTablesFile  = "url_patterns.json"
	textTablesFile = "text_patterns.json"
)

// Load lê e compila as tabelas do diretório informado. Arquivo ausente,
// JSON inválido ou tabela vazia são erros fatais de configuração.
func Load(dir string) (*Config, error) {
	tables := Tables{}

	for _, file := range []string{ctaTablesFile, urlTablesFile, textTablesFile} {
		path := filepath.Join(dir, file)

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler tabela de taxonomias %s: %w", path, err)
		}

		// Cada arquivo preenche o subconjunto de campos que declara;
		// campos desconhecidos são ignorados.
		if err := json.Unmarshal(data, &tables); err != nil {
			return nil, fmt.Errorf("erro ao decodificar tabela de taxonomias %s: %w", path, err)
		}
	}

	cfg, err := NewConfig(tables)
	if err != nil {
		return nil, fmt.Errorf("erro ao compilar taxonomias de %s: %w", dir, err)
	}

	logrus.WithFields(logrus.Fields{
		"dir": dir,
	}).Info("Tabelas de taxonomias carregadas e compiladas")

	return cfg, nil
}
