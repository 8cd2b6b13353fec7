// Package taxonomy carrega e compila as tabelas de padrões e taxonomias
// usadas pelo pipeline. As tabelas são dados versionados (arquivos JSON em
// taxonomies/), nunca constantes embutidas na lógica; uma tabela ausente ou
// vazia é fatal na inicialização para não mudar a semântica em silêncio.
package taxonomy

import (
	"fmt"
	"regexp"
	"strings"
)

// Tables é a forma bruta (serializável) das tabelas de configuração
type Tables struct {
	// Taxonomias de tipos de CTA
	MessageCTAs       []string `json:"message_ctas"`
	CallCTAs          []string `json:"call_ctas"`
	FormCTAs          []string `json:"form_ctas"`
	TransactionalCTAs []string `json:"transactional_ctas"`
	LeadIntentCTAs    []string `json:"lead_intent_ctas"`
	GenericCTAs       []string `json:"generic_ctas"`

	// Plataformas exclusivamente de mensagem
	MessagingPlatforms []string `json:"messaging_platforms"`

	// Padrões de URL
	MessagingURLPatterns     []string `json:"messaging_url_patterns"`
	TelephonyURLPatterns     []string `json:"telephony_url_patterns"`
	FormURLPatterns          []string `json:"form_url_patterns"`
	TransactionalURLPatterns []string `json:"transactional_url_patterns"`
	TransactionalDomains     []string `json:"transactional_domains"`

	// Padrões de texto (EN/ES, casados contra texto normalizado)
	PriceDiscountPatterns     []string `json:"price_discount_patterns"`
	FollowUpPatterns          []string `json:"follow_up_patterns"`
	ConsultativePatterns      []string `json:"consultative_patterns"`
	QualificationPatterns     []string `json:"qualification_patterns"`
	ImmediacyPatterns         []string `json:"immediacy_patterns"`
	RegulatedNamePatterns     []string `json:"regulated_name_patterns"`
	RegulatedCategoryPatterns []string `json:"regulated_category_patterns"`
	ServiceBreadthPatterns    []string `json:"service_breadth_patterns"`
	ContentMediaPatterns      []string `json:"content_media_patterns"`
}

// Config é a forma compilada e imutável das tabelas, passada explicitamente
// a cada componente do pipeline (nunca acessada como estado global).
type Config struct {
	MessageCTAs       StringSet
	CallCTAs          StringSet
	FormCTAs          StringSet
	TransactionalCTAs StringSet
	LeadIntentCTAs    StringSet
	GenericCTAs       StringSet

	MessagingPlatforms StringSet

	MessagingURL     *PatternSet
	TelephonyURL     *PatternSet
	FormURL          *PatternSet
	TransactionalURL *PatternSet
	TransactionalDom *PatternSet

	PriceDiscount     *PatternSet
	FollowUp          *PatternSet
	Consultative      *PatternSet
	Qualification     *PatternSet
	Immediacy         *PatternSet
	RegulatedName     *PatternSet
	RegulatedCategory *PatternSet
	ServiceBreadth    *PatternSet
	ContentMedia      *PatternSet
}

// StringSet é um conjunto de membros de taxonomia, casado por igualdade
// depois de maiúsculas (tipos de CTA e plataformas chegam como enums)
type StringSet map[string]struct{}

func newStringSet(name string, members []string) (StringSet, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("taxonomia %q está vazia", name)
	}

	set := make(StringSet, len(members))
	for _, m := range members {
		set[strings.ToUpper(strings.TrimSpace(m))] = struct{}{}
	}

	return set, nil
}

// Has verifica a pertinência do valor na taxonomia
func (s StringSet) Has(value string) bool {
	_, ok := s[strings.ToUpper(strings.TrimSpace(value))]
	return ok
}

// PatternSet é um conjunto de expressões regulares compiladas, casadas
// contra o texto já normalizado (ver Normalize)
type PatternSet struct {
	name     string
	patterns []*regexp.Regexp
}

func newPatternSet(name string, exprs []string) (*PatternSet, error) {
	if len(exprs) == 0 {
		return nil, fmt.Errorf("conjunto de padrões %q está vazio", name)
	}

	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("padrão inválido em %q (%s): %w", name, expr, err)
		}
		patterns = append(patterns, re)
	}

	return &PatternSet{name: name, patterns: patterns}, nil
}

// MatchAny informa se algum padrão do conjunto casa com o texto normalizado
func (p *PatternSet) MatchAny(text string) bool {
	normalized := Normalize(text)
	for _, re := range p.patterns {
		if re.MatchString(normalized) {
			return true
		}
	}
	return false
}

// CountDistinct conta quantos padrões distintos do conjunto casam com o
// texto normalizado (cada padrão conta no máximo uma vez)
func (p *PatternSet) CountDistinct(text string) int {
	normalized := Normalize(text)

	count := 0
	for _, re := range p.patterns {
		if re.MatchString(normalized) {
			count++
		}
	}

	return count
}

// MatchAnyRaw casa os padrões contra o texto como veio (URLs, onde o fold
// de acentos não se aplica e maiúsculas importam menos que o esquema)
func (p *PatternSet) MatchAnyRaw(text string) bool {
	lowered := strings.ToLower(text)
	for _, re := range p.patterns {
		if re.MatchString(lowered) {
			return true
		}
	}
	return false
}

// NewConfig compila as tabelas brutas em um Config imutável. Qualquer
// tabela vazia é erro: um conjunto vazio mudaria a classificação em
// silêncio.
func NewConfig(tables Tables) (*Config, error) {
	cfg := &Config{}

	var err error
	if cfg.MessageCTAs, err = newStringSet("message_ctas", tables.MessageCTAs); err != nil {
		return nil, err
	}
	if cfg.CallCTAs, err = newStringSet("call_ctas", tables.CallCTAs); err != nil {
		return nil, err
	}
	if cfg.FormCTAs, err = newStringSet("form_ctas", tables.FormCTAs); err != nil {
		return nil, err
	}
	if cfg.TransactionalCTAs, err = newStringSet("transactional_ctas", tables.TransactionalCTAs); err != nil {
		return nil, err
	}
	if cfg.LeadIntentCTAs, err = newStringSet("lead_intent_ctas", tables.LeadIntentCTAs); err != nil {
		return nil, err
	}
	if cfg.GenericCTAs, err = newStringSet("generic_ctas", tables.GenericCTAs); err != nil {
		return nil, err
	}
	if cfg.MessagingPlatforms, err = newStringSet("messaging_platforms", tables.MessagingPlatforms); err != nil {
		return nil, err
	}

	if cfg.MessagingURL, err = newPatternSet("messaging_url_patterns", tables.MessagingURLPatterns); err != nil {
		return nil, err
	}
	if cfg.TelephonyURL, err = newPatternSet("telephony_url_patterns", tables.TelephonyURLPatterns); err != nil {
		return nil, err
	}
	if cfg.FormURL, err = newPatternSet("form_url_patterns", tables.FormURLPatterns); err != nil {
		return nil, err
	}
	if cfg.TransactionalURL, err = newPatternSet("transactional_url_patterns", tables.TransactionalURLPatterns); err != nil {
		return nil, err
	}
	if cfg.TransactionalDom, err = newPatternSet("transactional_domains", tables.TransactionalDomains); err != nil {
		return nil, err
	}

	if cfg.PriceDiscount, err = newPatternSet("price_discount_patterns", tables.PriceDiscountPatterns); err != nil {
		return nil, err
	}
	if cfg.FollowUp, err = newPatternSet("follow_up_patterns", tables.FollowUpPatterns); err != nil {
		return nil, err
	}
	if cfg.Consultative, err = newPatternSet("consultative_patterns", tables.ConsultativePatterns); err != nil {
		return nil, err
	}
	if cfg.Qualification, err = newPatternSet("qualification_patterns", tables.QualificationPatterns); err != nil {
		return nil, err
	}
	if cfg.Immediacy, err = newPatternSet("immediacy_patterns", tables.ImmediacyPatterns); err != nil {
		return nil, err
	}
	if cfg.RegulatedName, err = newPatternSet("regulated_name_patterns", tables.RegulatedNamePatterns); err != nil {
		return nil, err
	}
	if cfg.RegulatedCategory, err = newPatternSet("regulated_category_patterns", tables.RegulatedCategoryPatterns); err != nil {
		return nil, err
	}
	if cfg.ServiceBreadth, err = newPatternSet("service_breadth_patterns", tables.ServiceBreadthPatterns); err != nil {
		return nil, err
	}
	if cfg.ContentMedia, err = newPatternSet("content_media_patterns", tables.ContentMediaPatterns); err != nil {
		return nil, err
	}

	return cfg, nil
}
