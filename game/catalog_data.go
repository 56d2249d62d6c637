// game/catalog_data.go - The 15 patient-safety stations
package game

var challenges = []Challenge{
	{
		ID: 1, Title: "Identificação segura do recém-nascido", Type: ChallengeTypeQuiz,
		TimeLimit: 90, Points: 5, Background: "img/cenario-maternidade.jpg",
		RequiredKey: "", KeyReward: "chave_estacao_1",
		Items: []SceneItem{
			{ID: "q1", X: 25, Y: 60, Icon: "bi-card-checklist", Title: "Pulseira de Identificação"},
			{ID: "q2", X: 50, Y: 40, Icon: "bi-clipboard2-plus", Title: "Momento da Colocação"},
			{ID: "q3", X: 75, Y: 60, Icon: "bi-arrow-repeat", Title: "Procedimento de Troca"},
			{ID: "q4", X: 50, Y: 80, Icon: "bi-shield-check", Title: "Segurança na Alta"},
		},
		Quiz: []QuizQuestion{
			{
				ID: "q1", Text: "Quais informações devem constar na pulseira do recém-nascido?",
				Options: []Option{
					{ID: "a", Text: "Apenas nome da mãe"},
					{ID: "b", Text: "Nome da mãe, data/hora de nascimento, sexo e registro"},
					{ID: "c", Text: "Apenas o sexo do bebê"},
				},
				CorrectAnswer: "b", Points: 1,
			},
			{
				ID: "q2", Text: "Quando a pulseira deve ser colocada?",
				Options: []Option{
					{ID: "a", Text: "Imediatamente após o nascimento"},
					{ID: "b", Text: "Após o primeiro banho"},
					{ID: "c", Text: "No momento da alta"},
				},
				CorrectAnswer: "a", Points: 1,
			},
			{
				ID: "q3", Text: "Se a pulseira de identificação do bebê cair, qual é o procedimento correto?",
				Options: []Option{
					{ID: "a", Text: "Avisar a enfermagem apenas no próximo check-up"},
					{ID: "b", Text: "Os pais devem tentar recolocá-la"},
					{ID: "c", Text: "Notificar a enfermagem imediatamente para nova emissão e conferência"},
				},
				CorrectAnswer: "c", Points: 1,
			},
			{
				ID: "q4", Text: "No momento da alta, qual ação é fundamental para prevenir a troca de bebês?",
				Options: []Option{
					{ID: "a", Text: "Apenas assinar os documentos de saída"},
					{ID: "b", Text: "Conferir os dados da pulseira da mãe e do bebê na presença de um profissional"},
					{ID: "c", Text: "Verificar se a roupa do bebê é a mesma que os pais trouxeram"},
				},
				CorrectAnswer: "b", Points: 2,
			},
		},
	},
	{
		ID: 2, Title: "Administração de medicamentos pediátricos", Type: ChallengeTypeOrdering,
		TimeLimit: 90, Points: 7, Background: "img/cenario-enfermaria.jpg",
		RequiredKey: "chave_estacao_1", KeyReward: "chave_estacao_2",
		Ordering: &OrderingData{
			Instructions: "Ordene os passos para a administração segura de medicamentos pediátricos.",
			Items: []OrderingItem{
				{ID: "p1", Text: "Verificar a prescrição médica e os '5 Certos'"},
				{ID: "p2", Text: "Calcular a dose exata com base no peso da criança"},
				{ID: "p3", Text: "Realizar a dupla checagem da dose com outro profissional"},
				{ID: "p4", Text: "Administrar o medicamento ao paciente correto"},
				{ID: "p5", Text: "Registrar a administração em prontuário imediatamente"},
			},
			CorrectOrder: []string{"p1", "p2", "p3", "p4", "p5"},
		},
	},
	{
		ID: 3, Title: "Higienização das mãos", Type: ChallengeTypeMemory,
		TimeLimit: 120, Points: 4, Background: "img/cenario-uti.jpg",
		RequiredKey: "chave_estacao_2", KeyReward: "chave_estacao_3",
		Memory: &MemoryData{
			Instructions: "Encontre os pares corretos para a higienização das mãos.",
			Images: []string{
				"img/agua.jpg",
				"img/sabonete.jpg",
				"img/esfregar_maos.jpg",
				"img/mao_limpa.jpg",
				"img/enxaguar.jpg",
				"img/mao_suja.jpg",
				"img/papel_toalha.jpg",
			},
		},
	},
	{
		ID: 4, Title: "Segurança na nutrição enteral", Type: ChallengeTypeMatching,
		TimeLimit: 90, Points: 6, Background: "img/cenario-farmacia.jpg",
		RequiredKey: "chave_estacao_3", KeyReward: "chave_estacao_4",
		Matching: &MatchingData{
			Instructions: "Correlacione os termos às suas definições corretas.",
			Matches: []MatchPair{
				{Term: "Verificação da sonda", Definition: "Deve ser feita antes de cada administração."},
				{Term: "Bomba de infusão", Definition: "Garante controle rigoroso do volume e velocidade."},
				{Term: "Cabeceira elevada", Definition: "Reduz o risco de aspiração durante a dieta."},
				{Term: "Sinais de intolerância", Definition: "Vômitos e distensão abdominal."},
				{Term: "Troca do equipo", Definition: "Deve ser realizada a cada 24 horas para prevenir infecção."},
				{Term: "Registro em prontuário", Definition: "Anotar volume, horário e tipo de dieta administrada."},
			},
		},
	},
	{
		ID: 5, Title: "Monitorização Clínica em UTI Pediátrica", Type: ChallengeTypeQuiz,
		TimeLimit: 90, Points: 8, Background: "img/cenario-uti-ped.jpg",
		RequiredKey: "chave_estacao_4", KeyReward: "chave_estacao_5",
		Items: []SceneItem{
			{ID: "q1", X: 30, Y: 55, Icon: "bi-thermometer-half", Title: "Temperatura"},
			{ID: "q2", X: 50, Y: 75, Icon: "bi-lungs", Title: "Respiração"},
			{ID: "q3", X: 70, Y: 55, Icon: "bi-heart-pulse", Title: "Frequência Cardíaca"},
			{ID: "q4", X: 40, Y: 35, Icon: "bi-activity", Title: "Pressão Arterial"},
			{ID: "q5", X: 60, Y: 35, Icon: "bi-droplet", Title: "Saturação de O₂"},
		},
		Quiz: []QuizQuestion{
			{
				ID: "q1", Text: "Qual é a forma mais segura para verificar a temperatura de um recém-nascido?",
				Options: []Option{
					{ID: "a", Text: "Termômetro digital axilar"},
					{ID: "b", Text: "Mão na testa do bebê"},
					{ID: "c", Text: "Termômetro de mercúrio"},
				},
				CorrectAnswer: "a", Points: 2,
			},
			{
				ID: "q2", Text: "Respiração periódica em um neonato (pausas de até 10s) é considerada:",
				Options: []Option{
					{ID: "a", Text: "Um sinal grave de apneia"},
					{ID: "b", Text: "Uma característica comum que deve ser monitorada"},
					{ID: "c", Text: "Um sinal de frio"},
				},
				CorrectAnswer: "b", Points: 2,
			},
			{
				ID: "q3", Text: "Qual sinal de frequência cardíaca indica deterioração clínica em um neonato?",
				Options: []Option{
					{ID: "a", Text: "Aumento durante o choro"},
					{ID: "b", Text: "Bradicardia ou taquicardia súbita e mantida"},
					{ID: "c", Text: "Estabilidade durante o sono"},
				},
				CorrectAnswer: "b", Points: 2,
			},
			{
				ID: "q4", Text: "Em UTI pediátrica, a aferição da pressão arterial deve ser:",
				Options: []Option{
					{ID: "a", Text: "Com manguito adequado ao tamanho do braço"},
					{ID: "b", Text: "Sempre no membro inferior"},
					{ID: "c", Text: "Somente se houver suspeita de choque"},
				},
				CorrectAnswer: "a", Points: 1,
			},
			{
				ID: "q5", Text: "A saturação de O₂ em neonatos deve ser mantida preferencialmente:",
				Options: []Option{
					{ID: "a", Text: "Entre 90% e 95%"},
					{ID: "b", Text: "Sempre acima de 100%"},
					{ID: "c", Text: "Abaixo de 85% para evitar hiperóxia"},
				},
				CorrectAnswer: "a", Points: 1,
			},
		},
	},
	{
		ID: 6, Title: "Prevenção de Quedas em Pediatria", Type: ChallengeTypePuzzle,
		TimeLimit: 90, Points: 5, Background: "img/cenario-enfermaria.jpg",
		RequiredKey: "chave_estacao_5", KeyReward: "chave_estacao_6",
		Puzzle: &PuzzleData{
			Instructions: "Monte a imagem para revelar a cena de prevenção de quedas.",
			Image:        "img/prevencao_quedas_puzzle.jpg",
			Pieces:       9,
		},
	},
	{
		ID: 7, Title: "Cuidados com Dispositivos Invasivos", Type: ChallengeTypeOrdering,
		TimeLimit: 120, Points: 8, Background: "img/cenario-uti.jpg",
		RequiredKey: "chave_estacao_6", KeyReward: "chave_estacao_7",
		Ordering: &OrderingData{
			Instructions: "Ordene os passos para a punção segura de uma veia periférica.",
			Items: []OrderingItem{
				{ID: "p1", Text: "Higienizar as mãos"},
				{ID: "p2", Text: "Separar e preparar o material"},
				{ID: "p3", Text: "Calçar luvas de procedimento"},
				{ID: "p4", Text: "Aplicar garrote e selecionar a veia"},
				{ID: "p5", Text: "Realizar antissepsia da pele"},
				{ID: "p6", Text: "Realizar a punção e observar refluxo"},
				{ID: "p7", Text: "Remover garrote, conectar e fixar cateter"},
				{ID: "p8", Text: "Descartar perfurocortantes e higienizar as mãos"},
			},
			CorrectOrder: []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"},
		},
	},
	{
		ID: 8, Title: "Comunicação Efetiva (SBAR)", Type: ChallengeTypeMatching,
		TimeLimit: 60, Points: 5, Background: "img/cenario-sala-enfermagem.jpg",
		RequiredKey: "chave_estacao_7", KeyReward: "chave_estacao_8",
		Matching: &MatchingData{
			Instructions: "Correlacione cada informação à etapa correta do SBAR.",
			Matches: []MatchPair{
				{Term: "S - Situação", Definition: "João, leito 1, apresentou febre de 38.5°C."},
				{Term: "B - Breve Histórico", Definition: "5 anos, internado por pneumonia, em uso de antibiótico."},
				{Term: "A - Avaliação", Definition: "Acredito que seja resposta inflamatória, mas monitorar."},
				{Term: "R - Recomendação", Definition: "Reavaliar temperatura em 1h e comunicar médico se persistir."},
			},
		},
	},
	{
		ID: 9, Title: "Reconhecimento de Sepse", Type: ChallengeTypeWordSearch,
		TimeLimit: 120, Points: 6, Background: "img/cenario-uti.jpg",
		RequiredKey: "chave_estacao_8", KeyReward: "chave_estacao_9",
		WordSearch: &WordSearchData{
			Instructions: "Encontre os sinais de sepse em neonatos.",
			Words:        []string{"FEBRE", "HIPOTERMIA", "TAQUICARDIA", "LETARGIA", "GEMENCIA"},
			GridSize:     14,
		},
	},
	{
		ID: 10, Title: "Segurança na Ventilação Mecânica", Type: ChallengeTypeQuiz,
		TimeLimit: 120, Points: 9, Background: "img/cenario-uti-ped.jpg",
		RequiredKey: "chave_estacao_9", KeyReward: "chave_estacao_10",
		Items: []SceneItem{
			{ID: "q1", X: 30, Y: 70, Icon: "bi-shield-check", Title: "Prevenção de PAV"},
			{ID: "q2", X: 50, Y: 50, Icon: "bi-lungs-fill", Title: "Ventilação Protetora"},
			{ID: "q3", X: 70, Y: 70, Icon: "bi-exclamation-triangle", Title: "Alarmes Críticos"},
		},
		Quiz: []QuizQuestion{
			{
				ID: "q1", Text: "Qual medida é fundamental para a prevenção da Pneumonia Associada à Ventilação (PAV)?",
				Options: []Option{
					{ID: "a", Text: "Manter a cabeceira do leito elevada (30-45 graus)"},
					{ID: "b", Text: "Aspirar o paciente apenas uma vez ao dia"},
					{ID: "c", Text: "Manter o paciente sempre deitado (0 graus)"},
				},
				CorrectAnswer: "a", Points: 3,
			},
			{
				ID: "q2", Text: "Para prevenir lesão pulmonar (VILI), qual estratégia é indicada?",
				Options: []Option{
					{ID: "a", Text: "Utilizar sempre os maiores volumes correntes"},
					{ID: "b", Text: "Utilizar baixos volumes correntes e controlar a pressão de platô"},
					{ID: "c", Text: "Desativar os alarmes de pressão"},
				},
				CorrectAnswer: "b", Points: 3,
			},
			{
				ID: "q3", Text: "O alarme de alta pressão dispara. Qual pode ser a causa?",
				Options: []Option{
					{ID: "a", Text: "O paciente está mais calmo"},
					{ID: "b", Text: "Excesso de secreção no tubo ou tosse"},
					{ID: "c", Text: "Circuito desconectado"},
				},
				CorrectAnswer: "b", Points: 3,
			},
		},
	},
	{
		ID: 11, Title: "Segurança na Transfusão Sanguínea", Type: ChallengeTypeOrdering,
		TimeLimit: 60, Points: 8, Background: "img/cenario-banco-sangue.jpg",
		RequiredKey: "chave_estacao_10", KeyReward: "chave_estacao_11",
		Ordering: &OrderingData{
			Instructions: "Ordene os passos para uma transfusão de hemoderivado segura.",
			Items: []OrderingItem{
				{ID: "p1", Text: "Checar prescrição e consentimento"},
				{ID: "p2", Text: "Verificar sinais vitais pré-transfusionais"},
				{ID: "p3", Text: "Realizar dupla checagem da bolsa e do paciente"},
				{ID: "p4", Text: "Administrar o hemoderivado"},
				{ID: "p5", Text: "Monitorar o paciente nos primeiros 15 minutos"},
				{ID: "p6", Text: "Registrar todo o procedimento"},
			},
			CorrectOrder: []string{"p1", "p2", "p3", "p4", "p5", "p6"},
		},
	},
	{
		ID: 12, Title: "Prevenção de Lesão por Pressão", Type: ChallengeTypeMemory,
		TimeLimit: 120, Points: 6, Background: "img/cenario-enfermaria.jpg",
		RequiredKey: "chave_estacao_11", KeyReward: "chave_estacao_12",
		Memory: &MemoryData{
			Instructions: "Encontre os pares relacionados à prevenção de lesão por pressão.",
			Images: []string{
				"img/inspecao.png",
				"img/coxins.png",
				"img/cisalhamento.png",
				"img/hidratacao.png",
				"img/nutricao.png",
				"img/umidade.png",
			},
		},
	},
	{
		ID: 13, Title: "Manejo da Dor em Neonatos", Type: ChallengeTypeMatching,
		TimeLimit: 90, Points: 7, Background: "img/cenario-maternidade.jpg",
		RequiredKey: "chave_estacao_12", KeyReward: "chave_estacao_13",
		Matching: &MatchingData{
			Instructions: "Associe cada medida de manejo da dor em neonatos à sua categoria correta.",
			Matches: []MatchPair{
				{Term: "Sucção não nutritiva", Definition: "Medida de conforto sensorial"},
				{Term: "Glicose oral", Definition: "Medida adjuvante não farmacológica"},
				{Term: "Contato pele a pele (método canguru)", Definition: "Medida de vínculo e regulação fisiológica"},
				{Term: "Analgésicos opioides", Definition: "Medida farmacológica para dor intensa"},
				{Term: "Envólucro/Swaddling", Definition: "Medida de contenção e autorregulação"},
				{Term: "Música suave ou voz materna", Definition: "Medida ambiental calmante"},
			},
		},
	},
	{
		ID: 14, Title: "Passagem de Plantão Segura", Type: ChallengeTypePuzzle,
		TimeLimit: 120, Points: 5, Background: "img/cenario-sala-enfermagem.jpg",
		RequiredKey: "chave_estacao_13", KeyReward: "chave_estacao_14",
		Puzzle: &PuzzleData{
			Instructions: "Monte a imagem que representa uma passagem de plantão eficaz.",
			Image:        "img/passagem_plantao_puzzle.jpg",
			Pieces:       9,
		},
	},
	{
		ID: 15, Title: "Checklist de Cirurgia Segura", Type: ChallengeTypeOrdering,
		TimeLimit: 150, Points: 11, Background: "img/cenario-cirurgia.jpg",
		RequiredKey: "chave_estacao_14", KeyReward: "chave_estacao_15",
		Ordering: &OrderingData{
			Instructions: "Organize na ordem correta as etapas fundamentais de segurança cirúrgica.",
			Items: []OrderingItem{
				{ID: "p1", Text: "Assinatura do termo de consentimento pelos pais/responsáveis"},
				{ID: "p2", Text: "Checagem de paciente, sítio e alergias (antes da indução anestésica)"},
				{ID: "p3", Text: "Pausa cirúrgica com toda a equipe (antes da incisão cirúrgica)"},
				{ID: "p4", Text: "Confirmação da administração da antibioticoterapia profilática (se indicada)"},
				{ID: "p5", Text: "Realização do procedimento cirúrgico"},
				{ID: "p6", Text: "Contagem de compressas e instrumentos"},
			},
			CorrectOrder: []string{"p1", "p2", "p3", "p4", "p5", "p6"},
		},
	},
}
