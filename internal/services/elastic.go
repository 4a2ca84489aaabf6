package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"omnio_back_end/internal/database"
	"omnio_back_end/internal/models"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const productIndex = "products"

// IndexProduct indexe un produit dans Elasticsearch. Chaque variante de
// locale a son propre document, identifié par documentId:locale.
func IndexProduct(p models.Product) {
	if database.Elastic == nil {
		log.Println("⚠️ Elastic non initialisé, impossible d'indexer:", p.Name)
		return
	}

	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      productIndex,
		DocumentID: fmt.Sprintf("%s:%s", p.DocumentID, p.Locale),
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erreur envoi Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", p.Name, res.String())
	} else {
		log.Printf("✅ Produit indexé dans Elasticsearch: %s (%s)", p.Name, p.Locale)
	}
}

// RemoveProduct supprime une variante de produit de l'index
func RemoveProduct(documentID, locale string) {
	if database.Elastic == nil {
		return
	}
	req := esapi.DeleteRequest{
		Index:      productIndex,
		DocumentID: fmt.Sprintf("%s:%s", documentID, locale),
	}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erreur suppression Elastic:", err)
		return
	}
	res.Body.Close()
}

// SearchProducts recherche des produits par nom, marque ou slug, filtré
// par locale
func SearchProducts(query, locale string) ([]map[string]interface{}, error) {
	if database.Elastic == nil {
		return nil, errors.New("client Elasticsearch non initialisé")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"multi_match": map[string]interface{}{
						"query":  query,
						"fields": []string{"name", "brand", "slug"},
					},
				},
				"filter": map[string]interface{}{
					"term": map[string]interface{}{"locale": locale},
				},
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{productIndex},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		return nil, fmt.Errorf("erreur requête Elastic: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		json.NewDecoder(res.Body).Decode(&e)
		log.Printf("❌ Elasticsearch erreur: %+v", e)
		return nil, errors.New("index non trouvé ou vide")
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erreur décodage JSON: %v", err)
	}

	hitsData, ok := r["hits"].(map[string]interface{})
	if !ok {
		return nil, errors.New("réponse Elastic invalide (pas de hits)")
	}

	hitsArray, ok := hitsData["hits"].([]interface{})
	if !ok {
		return nil, errors.New("aucun résultat trouvé")
	}

	results := make([]map[string]interface{}, 0, len(hitsArray))
	for _, hit := range hitsArray {
		hitMap, _ := hit.(map[string]interface{})
		if source, ok := hitMap["_source"].(map[string]interface{}); ok {
			results = append(results, source)
		}
	}

	return results, nil
}
