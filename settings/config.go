// Package settings holds service credentials for the optional database and
// cloud result sinks, loaded from a local json file or from amazon secrets.
package settings

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

type Config struct {
	DBHost     string `json:"db_host"`
	DBPort     int    `json:"db_port"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBName     string `json:"db_name"`

	InfluxURL      string `json:"influx_url"`
	InfluxUser     string `json:"influx_user"`
	InfluxPassword string `json:"influx_password"`
}

// LoadConfig loads service credentials from a local json file or, when
// secret is set, from an amazon secrets file of the same name.
func LoadConfig(file string, secret bool) Config {
	var config Config
	if secret {
		raw := getSecret(file)
		json.Unmarshal([]byte(raw), &config)
		return config
	}
	configFile, err := os.Open(file)
	if err != nil {
		log.Println(err.Error())
		return config
	}
	defer configFile.Close()
	jsonParser := json.NewDecoder(configFile)
	jsonParser.Decode(&config)
	return config
}

// LoadENV exports every key of the ENVIRONMENT_VARIABLES secret into the
// process environment.
func LoadENV(isSecret bool) {
	if isSecret {
		secretFile := getSecret("ENVIRONMENT_VARIABLES")
		secret := make(map[string]interface{})
		json.Unmarshal([]byte(secretFile), &secret)
		for key, value := range secret {
			log.Println("Setting ENV:", key)
			os.Setenv(key, value.(string))
		}
	}
}

func getSecret(secretName string) string {
	svc := secretsmanager.New(session.New(), aws.NewConfig().WithRegion("us-west-1"))
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretName),
		VersionStage: aws.String("AWSCURRENT"),
	}

	result, err := svc.GetSecretValue(input)
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			switch aerr.Code() {
			case secretsmanager.ErrCodeDecryptionFailure:
				fmt.Println(secretsmanager.ErrCodeDecryptionFailure, aerr.Error())
			case secretsmanager.ErrCodeInternalServiceError:
				fmt.Println(secretsmanager.ErrCodeInternalServiceError, aerr.Error())
			case secretsmanager.ErrCodeInvalidParameterException:
				fmt.Println(secretsmanager.ErrCodeInvalidParameterException, aerr.Error())
			case secretsmanager.ErrCodeInvalidRequestException:
				fmt.Println(secretsmanager.ErrCodeInvalidRequestException, aerr.Error())
			case secretsmanager.ErrCodeResourceNotFoundException:
				fmt.Println(secretsmanager.ErrCodeResourceNotFoundException, aerr.Error())
			}
		} else {
			fmt.Println(err.Error())
		}
		return ""
	}
	if result.SecretString != nil {
		return *result.SecretString
	}
	return ""
}
